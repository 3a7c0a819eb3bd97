package coinswap

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// secp256k1 generator point, compressed. Any valid point works; the decoder
// rejects bytes that are not on the curve.
const testPubKey = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }
func u32Ptr(v uint32) *uint32 { return &v }
func boolPtr(v bool) *bool    { return &v }

func testOffer() Offer {
	key := mustHex(testPubKey)
	return Offer{
		BaseFee:              1_000,
		AmountRelativeFeePct: 0.1,
		TimeRelativeFeePct:   0.05,
		RequiredConfirms:     1,
		MinimumLocktime:      20,
		MaxSize:              5_000_000,
		MinSize:              10_000,
		TweakablePoint:       PublicKey{Compressed: true, Key: key},
		Fidelity: FidelityProof{
			Bond: FidelityBond{
				Amount:   50_000,
				LockTime: LockTime{Kind: LockTimeBlocks, Value: 120_000},
				Pubkey:   PublicKey{Compressed: true, Key: key},
			},
			CertHash: []byte{0xde, 0xad, 0xbe, 0xef},
			CertSig:  []byte{0x01, 0x02, 0x03},
		},
	}
}

func mustHex(s string) []byte {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return raw
}

func TestBalancesRoundTrip(t *testing.T) {
	want := Balances{Regular: 1, Swap: 2, Contract: 3, Fidelity: 4, Spendable: 100_000_000}
	raw, err := encodeBalances(want)
	require.NoError(t, err)
	got, err := decodeBalances(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeBalancesIgnoresUnknownFields(t *testing.T) {
	// Additive engine changes must not break existing binaries.
	got, err := decodeBalances([]byte(`{"regular":5,"swap":0,"contract":0,"fidelity":0,"spendable":5,"future_field":true}`))
	require.NoError(t, err)
	require.Equal(t, int64(5), got.Regular)
}

func TestDecodeBalancesRejectsGarbage(t *testing.T) {
	_, err := decodeBalances([]byte(`not json`))
	require.True(t, IsCategory(err, CategoryEncoding))
}

func TestTransactionsRoundTrip(t *testing.T) {
	want := []WalletTransaction{
		{
			Info: TxInfo{
				Confirmations:     6,
				BlockHash:         strPtr("00000000000000000001"),
				BlockIndex:        u32Ptr(3),
				BlockTime:         i64Ptr(1_700_000_000),
				BlockHeight:       u32Ptr(850_000),
				Txid:              Txid(testTxid),
				Time:              1_700_000_100,
				TimeReceived:      1_700_000_050,
				BIP125Replaceable: "no",
				WalletConflicts:   []Txid{Txid(testTxid)},
			},
			Detail: TxDetail{
				Address:   strPtr("bcrt1qdest"),
				Category:  "receive",
				Amount:    25_000,
				Label:     strPtr("swap change"),
				Vout:      1,
				Fee:       i64Ptr(-141),
				Abandoned: boolPtr(false),
			},
			Trusted: boolPtr(true),
			Comment: strPtr("note"),
		},
		{
			// Unconfirmed: every optional stays nil, and nil must survive the
			// round trip without collapsing into a zero value.
			Info: TxInfo{
				Confirmations:     0,
				Txid:              Txid(testTxid),
				Time:              1_700_000_200,
				TimeReceived:      1_700_000_200,
				BIP125Replaceable: "yes",
			},
			Detail: TxDetail{Category: "send", Amount: -25_000, Vout: 0},
		},
	}

	raw, err := encodeTransactions(want)
	require.NoError(t, err)
	got, err := decodeTransactions(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.Nil(t, got[1].Detail.Fee)
	require.Nil(t, got[1].Info.BlockHash)
	require.NotNil(t, got[0].Detail.Fee)
}

func TestDecodeTransactionsRejectsInvalidTxid(t *testing.T) {
	raw := []byte(`[{"info":{"txid":{"value":"zzzz"},"confirmations":0,"time":0,"timereceived":0,"bip125_replaceable":"no","wallet_conflicts":[]},"detail":{"category":"send","amount":{"sats":0},"vout":0}}]`)
	_, err := decodeTransactions(raw)
	require.True(t, IsCategory(err, CategoryEncoding))
}

func TestUTXOInfosRoundTrip(t *testing.T) {
	redeem := Script{0x51}
	want := []UTXOInfo{
		{
			Entry: UTXO{
				Txid:          Txid(testTxid),
				Vout:          0,
				Address:       strPtr("bcrt1qtest"),
				ScriptPubKey:  Script{0x00, 0x14},
				Amount:        75_000,
				Confirmations: 10,
				RedeemScript:  &redeem,
				Spendable:     true,
				Solvable:      true,
				Safe:          true,
			},
			Spend: UTXOSpendInfo{
				Kind:       SpendSeedCoin,
				Path:       strPtr("m/84'/1'/0'/0/5"),
				InputValue: i64Ptr(75_000),
			},
		},
		{
			Entry: UTXO{
				Txid:         Txid(testTxid),
				Vout:         2,
				ScriptPubKey: Script{0x00, 0x20},
				Amount:       50_000,
			},
			Spend: UTXOSpendInfo{
				Kind:      SpendFidelityBondCoin,
				BondIndex: u32Ptr(0),
			},
		},
	}

	raw, err := encodeUTXOInfos(want)
	require.NoError(t, err)
	got, err := decodeUTXOInfos(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeUTXOInfosRejectsUnknownSpendKind(t *testing.T) {
	infos := []UTXOInfo{{
		Entry: UTXO{Txid: Txid(testTxid), ScriptPubKey: Script{}},
		Spend: UTXOSpendInfo{Kind: SpendSeedCoin},
	}}
	raw, err := encodeUTXOInfos(infos)
	require.NoError(t, err)

	mutated := []byte(string(raw))
	mutated = replaceOnce(t, mutated, `"spend_type":"SeedCoin"`, `"spend_type":"MysteryCoin"`)
	_, err = decodeUTXOInfos(mutated)
	require.True(t, IsCategory(err, CategoryEncoding))
	require.ErrorContains(t, err, "MysteryCoin")
}

func TestOfferBookRoundTrip(t *testing.T) {
	offer := testOffer()
	proto := ProtocolTaproot
	want := OfferBook{Makers: []OfferCandidate{
		{
			Address:  "maker1.onion:6102",
			Offer:    &offer,
			State:    MakerState{Status: MakerGood},
			Protocol: &proto,
		},
		{
			Address: "maker2.onion:6102",
			State:   MakerState{Status: MakerUnresponsive, Retries: uint8Ptr(3)},
		},
		{
			Address: "maker3.onion:6102",
			State:   MakerState{Status: MakerBad},
		},
	}}

	raw, err := encodeOfferBook(want)
	require.NoError(t, err)
	got, err := decodeOfferBook(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Nil(t, got.Makers[1].Offer)
	require.Nil(t, got.Makers[1].Protocol)
}

func TestDecodeOfferBookRejectsUnknownMakerState(t *testing.T) {
	raw := []byte(`{"makers":[{"address":{"address":"m.onion"},"state":{"state_type":"Flaky"}}]}`)
	_, err := decodeOfferBook(raw)
	require.True(t, IsCategory(err, CategoryEncoding))
	require.ErrorContains(t, err, "Flaky")
}

func TestDecodeOfferBookRejectsUnknownProtocol(t *testing.T) {
	raw := []byte(`{"makers":[{"address":{"address":"m.onion"},"state":{"state_type":"Good"},"protocol":{"protocol_type":"Quantum"}}]}`)
	_, err := decodeOfferBook(raw)
	require.True(t, IsCategory(err, CategoryEncoding))
}

func TestDecodeOfferBookRejectsBadPubKey(t *testing.T) {
	offer := testOffer()
	book := OfferBook{Makers: []OfferCandidate{{
		Address: "m.onion", Offer: &offer, State: MakerState{Status: MakerGood},
	}}}
	raw, err := encodeOfferBook(book)
	require.NoError(t, err)

	// 02 prefix with an x coordinate off the curve.
	bad := replaceOnce(t, raw, testPubKey,
		"020000000000000000000000000000000000000000000000000000000000000005")
	_, err = decodeOfferBook(bad)
	require.True(t, IsCategory(err, CategoryEncoding))
}

func TestSwapReportRoundTrip(t *testing.T) {
	want := SwapReport{
		SwapID:              "swap-9",
		SwapDurationSeconds: 93.5,
		TargetAmount:        500_000,
		TotalInputAmount:    510_000,
		TotalOutputAmount:   507_500,
		MakersCount:         2,
		MakerAddresses:      []string{"a.onion", "b.onion"},
		TotalFundingTxs:     4,
		FundingTxidsByHop:   [][]Txid{{Txid(testTxid), Txid(testTxid)}, {Txid(testTxid)}},
		TotalFee:            2_500,
		TotalMakerFees:      1_800,
		MiningFee:           700,
		FeePercentage:       0.5,
		MakerFees:           []MakerFeeInfo{{MakerIndex: 0, MakerAddress: "a.onion", BaseFee: 900, TotalFee: 900}},
		InputAmounts:        []int64{510_000},
		OutputChangeAmounts: []int64{7_500},
		OutputSwapAmounts:   []int64{500_000},
		OutputChangeUTXOs:   []UTXOWithAddress{{Amount: 7_500, Address: "bcrt1qc"}},
		OutputSwapUTXOs:     []UTXOWithAddress{{Amount: 500_000, Address: "bcrt1qs"}},
	}

	raw, err := encodeSwapReport(want)
	require.NoError(t, err)
	got, err := decodeSwapReport(raw)
	require.NoError(t, err)
	require.Equal(t, want, *got)
}

func TestFeeRatesRoundTrip(t *testing.T) {
	want := FeeRates{Fastest: 12.3, Standard: 5.1, Economy: 1.0}
	raw, err := encodeFeeRates(want)
	require.NoError(t, err)
	got, err := decodeFeeRates(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEncodeInitRequest(t *testing.T) {
	port := uint16(9051)
	pass := "hunter2"
	raw, err := encodeInitRequest(InitOptions{
		DataDir:        "/tmp/coinswap",
		WalletFileName: "wallet.dat",
		RPC: &RPCConfig{
			URL: "http://127.0.0.1:38332", Username: "user",
			Password: "password", WalletName: "coinswap_wallet",
		},
		ControlPort:     &port,
		TorAuthPassword: &pass,
		ZmqAddr:         "tcp://127.0.0.1:28332",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"data_dir":"/tmp/coinswap",
		"wallet_file_name":"wallet.dat",
		"rpc_config":{"url":"http://127.0.0.1:38332","username":"user","password":"password","wallet_name":"coinswap_wallet"},
		"control_port":9051,
		"tor_auth_password":"hunter2",
		"zmq_addr":"tcp://127.0.0.1:28332"
	}`, string(raw))
}

func TestEncodeInitRequestDefaults(t *testing.T) {
	// Absent optionals must not appear on the wire at all; the engine tells
	// "not set" apart from "empty".
	raw, err := encodeInitRequest(InitOptions{ZmqAddr: "tcp://127.0.0.1:28332"})
	require.NoError(t, err)
	require.JSONEq(t, `{"zmq_addr":"tcp://127.0.0.1:28332"}`, string(raw))
}

func TestEncodeRestoreRequest(t *testing.T) {
	raw, err := encodeRestoreRequest(RestoreOptions{
		DataDir:        "/tmp/coinswap",
		WalletFileName: "restored.dat",
		RPC:            DefaultRPCConfig(),
		BackupFilePath: "/tmp/backup.dat",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"data_dir":"/tmp/coinswap",
		"wallet_file_name":"restored.dat",
		"rpc_config":{"url":"http://127.0.0.1:38332","username":"user","password":"password","wallet_name":"coinswap_wallet"},
		"backup_file_path":"/tmp/backup.dat"
	}`, string(raw))

	_, err = encodeRestoreRequest(RestoreOptions{})
	require.True(t, IsCategory(err, CategoryEncoding))
}

func TestEncodeWalletPathRequest(t *testing.T) {
	raw, err := encodeWalletPathRequest("/tmp/wallet.dat")
	require.NoError(t, err)
	require.JSONEq(t, `{"wallet_path":"/tmp/wallet.dat"}`, string(raw))

	_, err = encodeWalletPathRequest("")
	require.True(t, IsCategory(err, CategoryEncoding))
}

func TestDisplayOffer(t *testing.T) {
	out, err := DisplayOffer(testOffer())
	require.NoError(t, err)
	require.JSONEq(t, `{
		"base_fee": 1000,
		"amount_relative_fee_pct": 0.1,
		"time_relative_fee_pct": 0.05,
		"required_confirms": 1,
		"minimum_locktime": 20,
		"max_size": 5000000,
		"min_size": 10000
	}`, out)
	// Proof material stays out of the rendering.
	require.NotContains(t, out, testPubKey)
	require.NotContains(t, out, "cert")
}

func TestLockTimeRoundTrip(t *testing.T) {
	for _, want := range []LockTime{
		{Kind: LockTimeBlocks, Value: 144},
		{Kind: LockTimeSeconds, Value: 1_700_000_000},
	} {
		got, err := parseLockTime(lockTimeToWire(want))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := parseLockTime(wireLockTime{LockType: "Epochs", Value: 1})
	require.Error(t, err)
}

func replaceOnce(t *testing.T, raw []byte, old, repl string) []byte {
	t.Helper()
	require.Contains(t, string(raw), old)
	return []byte(strings.Replace(string(raw), old, repl, 1))
}

package coinswap

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Marshaling between engine wire documents (JSON in byte buffers) and the
// public value types. This layer is pure data transformation: no engine
// calls, no retained references, deep copies on every conversion.
//
// Decoding is strict about closed sets: an enum tag this package does not
// recognize is a boundary bug and surfaces as a CategoryEncoding error, never
// a fallback value. Unknown *fields* are ignored so that additive engine
// changes do not break existing binaries.

// ---- wire shapes -----------------------------------------------------------

type wireTxid struct {
	Value string `json:"value"`
}

type wireOutPoint struct {
	Txid wireTxid `json:"txid"`
	Vout uint32   `json:"vout"`
}

type wireAddress struct {
	Address string `json:"address"`
}

type wireScript struct {
	Hex string `json:"hex"`
}

type wireAmount struct {
	Sats int64 `json:"sats"`
}

type wireBalances struct {
	Regular   int64 `json:"regular"`
	Swap      int64 `json:"swap"`
	Contract  int64 `json:"contract"`
	Fidelity  int64 `json:"fidelity"`
	Spendable int64 `json:"spendable"`
}

type wireTxInfo struct {
	Confirmations     int32      `json:"confirmations"`
	BlockHash         *string    `json:"blockhash"`
	BlockIndex        *uint32    `json:"blockindex"`
	BlockTime         *int64     `json:"blocktime"`
	BlockHeight       *uint32    `json:"blockheight"`
	Txid              wireTxid   `json:"txid"`
	Time              int64      `json:"time"`
	TimeReceived      int64      `json:"timereceived"`
	BIP125Replaceable string     `json:"bip125_replaceable"`
	WalletConflicts   []wireTxid `json:"wallet_conflicts"`
}

type wireTxDetail struct {
	Address   *wireAddress `json:"address"`
	Category  string       `json:"category"`
	Amount    wireAmount   `json:"amount"`
	Label     *string      `json:"label"`
	Vout      uint32       `json:"vout"`
	Fee       *wireAmount  `json:"fee"`
	Abandoned *bool        `json:"abandoned"`
}

type wireTransaction struct {
	Info    wireTxInfo   `json:"info"`
	Detail  wireTxDetail `json:"detail"`
	Trusted *bool        `json:"trusted"`
	Comment *string      `json:"comment"`
}

type wireUTXO struct {
	Txid          wireTxid    `json:"txid"`
	Vout          uint32      `json:"vout"`
	Address       *string     `json:"address"`
	Label         *string     `json:"label"`
	ScriptPubKey  wireScript  `json:"script_pub_key"`
	Amount        wireAmount  `json:"amount"`
	Confirmations uint32      `json:"confirmations"`
	RedeemScript  *wireScript `json:"redeem_script"`
	WitnessScript *wireScript `json:"witness_script"`
	Spendable     bool        `json:"spendable"`
	Solvable      bool        `json:"solvable"`
	Descriptor    *string     `json:"desc"`
	Safe          bool        `json:"safe"`
}

type wireSpendInfo struct {
	SpendType            string      `json:"spend_type"`
	Path                 *string     `json:"path"`
	MultisigRedeemScript *wireScript `json:"multisig_redeemscript"`
	InputValue           *wireAmount `json:"input_value"`
	Index                *uint32     `json:"index"`
}

type wireUTXOInfo struct {
	Entry wireUTXO      `json:"list_unspent_result_entry"`
	Spend wireSpendInfo `json:"utxo_spend_info"`
}

type wireFeeRates struct {
	Fastest  float64 `json:"fastest"`
	Standard float64 `json:"standard"`
	Economy  float64 `json:"economy"`
}

type wireLockTime struct {
	LockType string `json:"lock_type"`
	Value    uint32 `json:"value"`
}

type wirePublicKey struct {
	Compressed bool   `json:"compressed"`
	Inner      string `json:"inner"`
}

type wireFidelityBond struct {
	Amount   wireAmount    `json:"amount"`
	LockTime wireLockTime  `json:"lock_time"`
	Pubkey   wirePublicKey `json:"pubkey"`
}

type wireFidelityProof struct {
	Bond     wireFidelityBond `json:"bond"`
	CertHash string           `json:"cert_hash"`
	CertSig  string           `json:"cert_sig"`
}

type wireOffer struct {
	BaseFee              int64             `json:"base_fee"`
	AmountRelativeFeePct float64           `json:"amount_relative_fee_pct"`
	TimeRelativeFeePct   float64           `json:"time_relative_fee_pct"`
	RequiredConfirms     uint32            `json:"required_confirms"`
	MinimumLocktime      uint16            `json:"minimum_locktime"`
	MaxSize              int64             `json:"max_size"`
	MinSize              int64             `json:"min_size"`
	TweakablePoint       wirePublicKey     `json:"tweakable_point"`
	Fidelity             wireFidelityProof `json:"fidelity"`
}

type wireMakerState struct {
	StateType string `json:"state_type"`
	Retries   *uint8 `json:"retries"`
}

type wireMakerProtocol struct {
	ProtocolType string `json:"protocol_type"`
}

type wireOfferCandidate struct {
	Address  wireAddress        `json:"address"`
	Offer    *wireOffer         `json:"offer"`
	State    wireMakerState     `json:"state"`
	Protocol *wireMakerProtocol `json:"protocol"`
}

type wireOfferBook struct {
	Makers []wireOfferCandidate `json:"makers"`
}

type wireMakerFeeInfo struct {
	MakerIndex        uint32 `json:"maker_index"`
	MakerAddress      string `json:"maker_address"`
	BaseFee           int64  `json:"base_fee"`
	AmountRelativeFee int64  `json:"amount_relative_fee"`
	TimeRelativeFee   int64  `json:"time_relative_fee"`
	TotalFee          int64  `json:"total_fee"`
}

type wireUTXOWithAddress struct {
	Amount  int64  `json:"amount"`
	Address string `json:"address"`
}

type wireSwapReport struct {
	SwapID              string                `json:"swap_id"`
	SwapDurationSeconds float64               `json:"swap_duration_seconds"`
	TargetAmount        int64                 `json:"target_amount"`
	TotalInputAmount    int64                 `json:"total_input_amount"`
	TotalOutputAmount   int64                 `json:"total_output_amount"`
	MakersCount         uint32                `json:"makers_count"`
	MakerAddresses      []string              `json:"maker_addresses"`
	TotalFundingTxs     int64                 `json:"total_funding_txs"`
	FundingTxidsByHop   [][]string            `json:"funding_txids_by_hop"`
	TotalFee            int64                 `json:"total_fee"`
	TotalMakerFees      int64                 `json:"total_maker_fees"`
	MiningFee           int64                 `json:"mining_fee"`
	FeePercentage       float64               `json:"fee_percentage"`
	MakerFees           []wireMakerFeeInfo    `json:"maker_fee_info"`
	InputAmounts        []int64               `json:"input_utxos"`
	OutputChangeAmounts []int64               `json:"output_change_amounts"`
	OutputSwapAmounts   []int64               `json:"output_swap_amounts"`
	OutputChangeUTXOs   []wireUTXOWithAddress `json:"output_change_utxos"`
	OutputSwapUTXOs     []wireUTXOWithAddress `json:"output_swap_utxos"`
}

// Request documents sent to the engine.

type wireRPCConfig struct {
	URL        string `json:"url"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	WalletName string `json:"wallet_name"`
}

type wireInitRequest struct {
	DataDir         string         `json:"data_dir,omitempty"`
	WalletFileName  string         `json:"wallet_file_name,omitempty"`
	RPCConfig       *wireRPCConfig `json:"rpc_config,omitempty"`
	ControlPort     *uint16        `json:"control_port,omitempty"`
	TorAuthPassword *string        `json:"tor_auth_password,omitempty"`
	ZmqAddr         string         `json:"zmq_addr"`
	Password        *string        `json:"password,omitempty"`
}

type wireAddressTypeRequest struct {
	AddrType string `json:"addr_type"`
}

type wireInternalAddressesRequest struct {
	Count    uint32 `json:"count"`
	AddrType string `json:"addr_type"`
}

type wireTransactionsRequest struct {
	Count *uint32 `json:"count,omitempty"`
	Skip  *uint32 `json:"skip,omitempty"`
}

type wireSendRequest struct {
	Address   string         `json:"address"`
	Amount    int64          `json:"amount"`
	FeeRate   *float64       `json:"fee_rate,omitempty"`
	OutPoints []wireOutPoint `json:"manually_selected_outpoints,omitempty"`
}

type wireSwapRequest struct {
	SendAmount uint64         `json:"send_amount"`
	MakerCount uint32         `json:"maker_count"`
	OutPoints  []wireOutPoint `json:"manually_selected_outpoints,omitempty"`
}

type wireBackupRequest struct {
	DestinationPath string  `json:"destination_path"`
	Password        *string `json:"password,omitempty"`
}

type wireRestoreRequest struct {
	DataDir        string        `json:"data_dir,omitempty"`
	WalletFileName string        `json:"wallet_file_name,omitempty"`
	RPCConfig      wireRPCConfig `json:"rpc_config"`
	BackupFilePath string        `json:"backup_file_path"`
	Password       *string       `json:"password,omitempty"`
}

type wireWalletPathRequest struct {
	WalletPath string `json:"wallet_path"`
}

// ---- field-level conversions ----------------------------------------------

func parseTxid(s string) (Txid, error) {
	if _, err := chainhash.NewHashFromStr(s); err != nil {
		return "", fmt.Errorf("invalid txid %q: %w", s, err)
	}
	return Txid(s), nil
}

func parseTxids(in []wireTxid) ([]Txid, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]Txid, len(in))
	for i, w := range in {
		t, err := parseTxid(w.Value)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func parseScript(w wireScript) (Script, error) {
	raw, err := hex.DecodeString(w.Hex)
	if err != nil {
		return nil, fmt.Errorf("invalid script hex %q: %w", w.Hex, err)
	}
	return Script(raw), nil
}

func parseOptScript(w *wireScript) (*Script, error) {
	if w == nil {
		return nil, nil
	}
	s, err := parseScript(*w)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scriptToWire(s Script) wireScript {
	return wireScript{Hex: hex.EncodeToString(s)}
}

func optScriptToWire(s *Script) *wireScript {
	if s == nil {
		return nil
	}
	w := scriptToWire(*s)
	return &w
}

// parsePublicKey validates any non-empty key bytes against secp256k1. Makers
// advertise their tweakable point here; a point off the curve is a boundary
// bug upstream of us, not a usable value.
func parsePublicKey(w wirePublicKey) (PublicKey, error) {
	raw, err := hex.DecodeString(w.Inner)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key hex: %w", err)
	}
	if len(raw) > 0 {
		if _, err := btcec.ParsePubKey(raw); err != nil {
			return PublicKey{}, fmt.Errorf("invalid secp256k1 public key: %w", err)
		}
	}
	return PublicKey{Compressed: w.Compressed, Key: raw}, nil
}

func publicKeyToWire(k PublicKey) wirePublicKey {
	return wirePublicKey{Compressed: k.Compressed, Inner: hex.EncodeToString(k.Key)}
}

func parseLockTime(w wireLockTime) (LockTime, error) {
	var kind LockTimeKind
	switch w.LockType {
	case "Blocks":
		kind = LockTimeBlocks
	case "Seconds":
		kind = LockTimeSeconds
	default:
		return LockTime{}, fmt.Errorf("unknown locktime kind %q", w.LockType)
	}
	return LockTime{Kind: kind, Value: w.Value}, nil
}

func lockTimeToWire(l LockTime) wireLockTime {
	return wireLockTime{LockType: l.Kind.String(), Value: l.Value}
}

func parseSpendKind(tag string) (SpendKind, error) {
	switch tag {
	case "SeedCoin":
		return SpendSeedCoin, nil
	case "IncomingSwapCoin":
		return SpendIncomingSwapCoin, nil
	case "OutgoingSwapCoin":
		return SpendOutgoingSwapCoin, nil
	case "TimelockContract":
		return SpendTimelockContract, nil
	case "HashlockContract":
		return SpendHashlockContract, nil
	case "FidelityBondCoin":
		return SpendFidelityBondCoin, nil
	case "SweptCoin":
		return SpendSweptCoin, nil
	default:
		return 0, fmt.Errorf("unknown utxo spend kind %q", tag)
	}
}

func parseMakerStatus(tag string) (MakerStatus, error) {
	switch tag {
	case "Good":
		return MakerGood, nil
	case "Unresponsive":
		return MakerUnresponsive, nil
	case "Bad":
		return MakerBad, nil
	default:
		return 0, fmt.Errorf("unknown maker state %q", tag)
	}
}

func parseMakerProtocol(tag string) (MakerProtocol, error) {
	switch tag {
	case "Legacy":
		return ProtocolLegacy, nil
	case "Taproot":
		return ProtocolTaproot, nil
	default:
		return 0, fmt.Errorf("unknown maker protocol %q", tag)
	}
}

func outPointsToWire(in []OutPoint) []wireOutPoint {
	if in == nil {
		return nil
	}
	out := make([]wireOutPoint, len(in))
	for i, op := range in {
		out[i] = wireOutPoint{Txid: wireTxid{Value: string(op.Txid)}, Vout: op.Vout}
	}
	return out
}

// ---- result decoding -------------------------------------------------------

func decodeBalances(raw []byte) (Balances, error) {
	var w wireBalances
	if err := json.Unmarshal(raw, &w); err != nil {
		return Balances{}, encodingErr("decode balances", err)
	}
	return Balances{
		Regular:   w.Regular,
		Swap:      w.Swap,
		Contract:  w.Contract,
		Fidelity:  w.Fidelity,
		Spendable: w.Spendable,
	}, nil
}

func encodeBalances(b Balances) ([]byte, error) {
	return json.Marshal(wireBalances{
		Regular:   b.Regular,
		Swap:      b.Swap,
		Contract:  b.Contract,
		Fidelity:  b.Fidelity,
		Spendable: b.Spendable,
	})
}

func decodeAddress(raw []byte) (string, error) {
	var w wireAddress
	if err := json.Unmarshal(raw, &w); err != nil {
		return "", encodingErr("decode address", err)
	}
	if w.Address == "" {
		return "", encodingErrf("decode address: empty address record")
	}
	return w.Address, nil
}

func decodeAddressList(raw []byte) ([]string, error) {
	var ws []wireAddress
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, encodingErr("decode address list", err)
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		if w.Address == "" {
			return nil, encodingErrf("decode address list: empty address record at %d", i)
		}
		out[i] = w.Address
	}
	return out, nil
}

func decodeTxidResult(raw []byte) (Txid, error) {
	var w wireTxid
	if err := json.Unmarshal(raw, &w); err != nil {
		return "", encodingErr("decode txid", err)
	}
	t, err := parseTxid(w.Value)
	if err != nil {
		return "", encodingErr("decode txid", err)
	}
	return t, nil
}

func decodeWalletName(raw []byte) (string, error) {
	var w struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return "", encodingErr("decode wallet name", err)
	}
	return w.Name, nil
}

func decodeFeeRates(raw []byte) (FeeRates, error) {
	var w wireFeeRates
	if err := json.Unmarshal(raw, &w); err != nil {
		return FeeRates{}, encodingErr("decode fee rates", err)
	}
	return FeeRates{Fastest: w.Fastest, Standard: w.Standard, Economy: w.Economy}, nil
}

func encodeFeeRates(f FeeRates) ([]byte, error) {
	return json.Marshal(wireFeeRates{Fastest: f.Fastest, Standard: f.Standard, Economy: f.Economy})
}

func transactionFromWire(w wireTransaction) (WalletTransaction, error) {
	txid, err := parseTxid(w.Info.Txid.Value)
	if err != nil {
		return WalletTransaction{}, err
	}
	conflicts, err := parseTxids(w.Info.WalletConflicts)
	if err != nil {
		return WalletTransaction{}, err
	}

	var addr *string
	if w.Detail.Address != nil {
		a := w.Detail.Address.Address
		addr = &a
	}
	var fee *int64
	if w.Detail.Fee != nil {
		f := w.Detail.Fee.Sats
		fee = &f
	}

	return WalletTransaction{
		Info: TxInfo{
			Confirmations:     w.Info.Confirmations,
			BlockHash:         w.Info.BlockHash,
			BlockIndex:        w.Info.BlockIndex,
			BlockTime:         w.Info.BlockTime,
			BlockHeight:       w.Info.BlockHeight,
			Txid:              txid,
			Time:              w.Info.Time,
			TimeReceived:      w.Info.TimeReceived,
			BIP125Replaceable: w.Info.BIP125Replaceable,
			WalletConflicts:   conflicts,
		},
		Detail: TxDetail{
			Address:   addr,
			Category:  w.Detail.Category,
			Amount:    w.Detail.Amount.Sats,
			Label:     w.Detail.Label,
			Vout:      w.Detail.Vout,
			Fee:       fee,
			Abandoned: w.Detail.Abandoned,
		},
		Trusted: w.Trusted,
		Comment: w.Comment,
	}, nil
}

func transactionToWire(t WalletTransaction) wireTransaction {
	conflicts := make([]wireTxid, len(t.Info.WalletConflicts))
	for i, c := range t.Info.WalletConflicts {
		conflicts[i] = wireTxid{Value: string(c)}
	}
	if t.Info.WalletConflicts == nil {
		conflicts = nil
	}
	var addr *wireAddress
	if t.Detail.Address != nil {
		addr = &wireAddress{Address: *t.Detail.Address}
	}
	var fee *wireAmount
	if t.Detail.Fee != nil {
		fee = &wireAmount{Sats: *t.Detail.Fee}
	}
	return wireTransaction{
		Info: wireTxInfo{
			Confirmations:     t.Info.Confirmations,
			BlockHash:         t.Info.BlockHash,
			BlockIndex:        t.Info.BlockIndex,
			BlockTime:         t.Info.BlockTime,
			BlockHeight:       t.Info.BlockHeight,
			Txid:              wireTxid{Value: string(t.Info.Txid)},
			Time:              t.Info.Time,
			TimeReceived:      t.Info.TimeReceived,
			BIP125Replaceable: t.Info.BIP125Replaceable,
			WalletConflicts:   conflicts,
		},
		Detail: wireTxDetail{
			Address:   addr,
			Category:  t.Detail.Category,
			Amount:    wireAmount{Sats: t.Detail.Amount},
			Label:     t.Detail.Label,
			Vout:      t.Detail.Vout,
			Fee:       fee,
			Abandoned: t.Detail.Abandoned,
		},
		Trusted: t.Trusted,
		Comment: t.Comment,
	}
}

func decodeTransactions(raw []byte) ([]WalletTransaction, error) {
	var ws []wireTransaction
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, encodingErr("decode transactions", err)
	}
	out := make([]WalletTransaction, len(ws))
	for i, w := range ws {
		tx, err := transactionFromWire(w)
		if err != nil {
			return nil, encodingErr("decode transactions", err)
		}
		out[i] = tx
	}
	return out, nil
}

func encodeTransactions(txs []WalletTransaction) ([]byte, error) {
	ws := make([]wireTransaction, len(txs))
	for i, t := range txs {
		ws[i] = transactionToWire(t)
	}
	return json.Marshal(ws)
}

func utxoInfoFromWire(w wireUTXOInfo) (UTXOInfo, error) {
	txid, err := parseTxid(w.Entry.Txid.Value)
	if err != nil {
		return UTXOInfo{}, err
	}
	spk, err := parseScript(w.Entry.ScriptPubKey)
	if err != nil {
		return UTXOInfo{}, err
	}
	redeem, err := parseOptScript(w.Entry.RedeemScript)
	if err != nil {
		return UTXOInfo{}, err
	}
	witness, err := parseOptScript(w.Entry.WitnessScript)
	if err != nil {
		return UTXOInfo{}, err
	}
	kind, err := parseSpendKind(w.Spend.SpendType)
	if err != nil {
		return UTXOInfo{}, err
	}
	multisig, err := parseOptScript(w.Spend.MultisigRedeemScript)
	if err != nil {
		return UTXOInfo{}, err
	}
	var inputValue *int64
	if w.Spend.InputValue != nil {
		v := w.Spend.InputValue.Sats
		inputValue = &v
	}

	return UTXOInfo{
		Entry: UTXO{
			Txid:          txid,
			Vout:          w.Entry.Vout,
			Address:       w.Entry.Address,
			Label:         w.Entry.Label,
			ScriptPubKey:  spk,
			Amount:        w.Entry.Amount.Sats,
			Confirmations: w.Entry.Confirmations,
			RedeemScript:  redeem,
			WitnessScript: witness,
			Spendable:     w.Entry.Spendable,
			Solvable:      w.Entry.Solvable,
			Descriptor:    w.Entry.Descriptor,
			Safe:          w.Entry.Safe,
		},
		Spend: UTXOSpendInfo{
			Kind:                 kind,
			Path:                 w.Spend.Path,
			MultisigRedeemScript: multisig,
			InputValue:           inputValue,
			BondIndex:            w.Spend.Index,
		},
	}, nil
}

func utxoInfoToWire(u UTXOInfo) wireUTXOInfo {
	var inputValue *wireAmount
	if u.Spend.InputValue != nil {
		inputValue = &wireAmount{Sats: *u.Spend.InputValue}
	}
	return wireUTXOInfo{
		Entry: wireUTXO{
			Txid:          wireTxid{Value: string(u.Entry.Txid)},
			Vout:          u.Entry.Vout,
			Address:       u.Entry.Address,
			Label:         u.Entry.Label,
			ScriptPubKey:  scriptToWire(u.Entry.ScriptPubKey),
			Amount:        wireAmount{Sats: u.Entry.Amount},
			Confirmations: u.Entry.Confirmations,
			RedeemScript:  optScriptToWire(u.Entry.RedeemScript),
			WitnessScript: optScriptToWire(u.Entry.WitnessScript),
			Spendable:     u.Entry.Spendable,
			Solvable:      u.Entry.Solvable,
			Descriptor:    u.Entry.Descriptor,
			Safe:          u.Entry.Safe,
		},
		Spend: wireSpendInfo{
			SpendType:            u.Spend.Kind.String(),
			Path:                 u.Spend.Path,
			MultisigRedeemScript: optScriptToWire(u.Spend.MultisigRedeemScript),
			InputValue:           inputValue,
			Index:                u.Spend.BondIndex,
		},
	}
}

func decodeUTXOInfos(raw []byte) ([]UTXOInfo, error) {
	var ws []wireUTXOInfo
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, encodingErr("decode utxo list", err)
	}
	out := make([]UTXOInfo, len(ws))
	for i, w := range ws {
		u, err := utxoInfoFromWire(w)
		if err != nil {
			return nil, encodingErr("decode utxo list", err)
		}
		out[i] = u
	}
	return out, nil
}

func encodeUTXOInfos(infos []UTXOInfo) ([]byte, error) {
	ws := make([]wireUTXOInfo, len(infos))
	for i, u := range infos {
		ws[i] = utxoInfoToWire(u)
	}
	return json.Marshal(ws)
}

func offerFromWire(w wireOffer) (Offer, error) {
	point, err := parsePublicKey(w.TweakablePoint)
	if err != nil {
		return Offer{}, err
	}
	bondKey, err := parsePublicKey(w.Fidelity.Bond.Pubkey)
	if err != nil {
		return Offer{}, err
	}
	lockTime, err := parseLockTime(w.Fidelity.Bond.LockTime)
	if err != nil {
		return Offer{}, err
	}
	certHash, err := hex.DecodeString(w.Fidelity.CertHash)
	if err != nil {
		return Offer{}, fmt.Errorf("invalid cert hash hex: %w", err)
	}
	certSig, err := hex.DecodeString(w.Fidelity.CertSig)
	if err != nil {
		return Offer{}, fmt.Errorf("invalid cert sig hex: %w", err)
	}

	return Offer{
		BaseFee:              w.BaseFee,
		AmountRelativeFeePct: w.AmountRelativeFeePct,
		TimeRelativeFeePct:   w.TimeRelativeFeePct,
		RequiredConfirms:     w.RequiredConfirms,
		MinimumLocktime:      w.MinimumLocktime,
		MaxSize:              w.MaxSize,
		MinSize:              w.MinSize,
		TweakablePoint:       point,
		Fidelity: FidelityProof{
			Bond: FidelityBond{
				Amount:   w.Fidelity.Bond.Amount.Sats,
				LockTime: lockTime,
				Pubkey:   bondKey,
			},
			CertHash: certHash,
			CertSig:  certSig,
		},
	}, nil
}

func offerToWire(o Offer) wireOffer {
	return wireOffer{
		BaseFee:              o.BaseFee,
		AmountRelativeFeePct: o.AmountRelativeFeePct,
		TimeRelativeFeePct:   o.TimeRelativeFeePct,
		RequiredConfirms:     o.RequiredConfirms,
		MinimumLocktime:      o.MinimumLocktime,
		MaxSize:              o.MaxSize,
		MinSize:              o.MinSize,
		TweakablePoint:       publicKeyToWire(o.TweakablePoint),
		Fidelity: wireFidelityProof{
			Bond: wireFidelityBond{
				Amount:   wireAmount{Sats: o.Fidelity.Bond.Amount},
				LockTime: lockTimeToWire(o.Fidelity.Bond.LockTime),
				Pubkey:   publicKeyToWire(o.Fidelity.Bond.Pubkey),
			},
			CertHash: hex.EncodeToString(o.Fidelity.CertHash),
			CertSig:  hex.EncodeToString(o.Fidelity.CertSig),
		},
	}
}

func decodeOfferBook(raw []byte) (OfferBook, error) {
	var w wireOfferBook
	if err := json.Unmarshal(raw, &w); err != nil {
		return OfferBook{}, encodingErr("decode offer book", err)
	}

	makers := make([]OfferCandidate, len(w.Makers))
	for i, m := range w.Makers {
		status, err := parseMakerStatus(m.State.StateType)
		if err != nil {
			return OfferBook{}, encodingErr("decode offer book", err)
		}
		var retries *uint8
		if m.State.Retries != nil {
			r := *m.State.Retries
			retries = &r
		}
		var offer *Offer
		if m.Offer != nil {
			o, err := offerFromWire(*m.Offer)
			if err != nil {
				return OfferBook{}, encodingErr("decode offer book", err)
			}
			offer = &o
		}
		var protocol *MakerProtocol
		if m.Protocol != nil {
			p, err := parseMakerProtocol(m.Protocol.ProtocolType)
			if err != nil {
				return OfferBook{}, encodingErr("decode offer book", err)
			}
			protocol = &p
		}
		makers[i] = OfferCandidate{
			Address:  m.Address.Address,
			Offer:    offer,
			State:    MakerState{Status: status, Retries: retries},
			Protocol: protocol,
		}
	}
	return OfferBook{Makers: makers}, nil
}

func encodeOfferBook(b OfferBook) ([]byte, error) {
	makers := make([]wireOfferCandidate, len(b.Makers))
	for i, m := range b.Makers {
		var offer *wireOffer
		if m.Offer != nil {
			w := offerToWire(*m.Offer)
			offer = &w
		}
		var protocol *wireMakerProtocol
		if m.Protocol != nil {
			protocol = &wireMakerProtocol{ProtocolType: m.Protocol.String()}
		}
		makers[i] = wireOfferCandidate{
			Address:  wireAddress{Address: m.Address},
			Offer:    offer,
			State:    wireMakerState{StateType: m.State.Status.String(), Retries: m.State.Retries},
			Protocol: protocol,
		}
	}
	return json.Marshal(wireOfferBook{Makers: makers})
}

func decodeSwapReport(raw []byte) (*SwapReport, error) {
	var w wireSwapReport
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, encodingErr("decode swap report", err)
	}

	var byHop [][]Txid
	if w.FundingTxidsByHop != nil {
		byHop = make([][]Txid, len(w.FundingTxidsByHop))
		for i, hop := range w.FundingTxidsByHop {
			txids := make([]Txid, len(hop))
			for j, s := range hop {
				t, err := parseTxid(s)
				if err != nil {
					return nil, encodingErr("decode swap report", err)
				}
				txids[j] = t
			}
			byHop[i] = txids
		}
	}

	fees := make([]MakerFeeInfo, len(w.MakerFees))
	for i, f := range w.MakerFees {
		fees[i] = MakerFeeInfo{
			MakerIndex:        f.MakerIndex,
			MakerAddress:      f.MakerAddress,
			BaseFee:           f.BaseFee,
			AmountRelativeFee: f.AmountRelativeFee,
			TimeRelativeFee:   f.TimeRelativeFee,
			TotalFee:          f.TotalFee,
		}
	}
	if w.MakerFees == nil {
		fees = nil
	}

	toUTXOs := func(in []wireUTXOWithAddress) []UTXOWithAddress {
		if in == nil {
			return nil
		}
		out := make([]UTXOWithAddress, len(in))
		for i, u := range in {
			out[i] = UTXOWithAddress{Amount: u.Amount, Address: u.Address}
		}
		return out
	}

	return &SwapReport{
		SwapID:              w.SwapID,
		SwapDurationSeconds: w.SwapDurationSeconds,
		TargetAmount:        w.TargetAmount,
		TotalInputAmount:    w.TotalInputAmount,
		TotalOutputAmount:   w.TotalOutputAmount,
		MakersCount:         w.MakersCount,
		MakerAddresses:      append([]string(nil), w.MakerAddresses...),
		TotalFundingTxs:     w.TotalFundingTxs,
		FundingTxidsByHop:   byHop,
		TotalFee:            w.TotalFee,
		TotalMakerFees:      w.TotalMakerFees,
		MiningFee:           w.MiningFee,
		FeePercentage:       w.FeePercentage,
		MakerFees:           fees,
		InputAmounts:        append([]int64(nil), w.InputAmounts...),
		OutputChangeAmounts: append([]int64(nil), w.OutputChangeAmounts...),
		OutputSwapAmounts:   append([]int64(nil), w.OutputSwapAmounts...),
		OutputChangeUTXOs:   toUTXOs(w.OutputChangeUTXOs),
		OutputSwapUTXOs:     toUTXOs(w.OutputSwapUTXOs),
	}, nil
}

func encodeSwapReport(r SwapReport) ([]byte, error) {
	var byHop [][]string
	if r.FundingTxidsByHop != nil {
		byHop = make([][]string, len(r.FundingTxidsByHop))
		for i, hop := range r.FundingTxidsByHop {
			hopStr := make([]string, len(hop))
			for j, t := range hop {
				hopStr[j] = string(t)
			}
			byHop[i] = hopStr
		}
	}
	fees := make([]wireMakerFeeInfo, len(r.MakerFees))
	for i, f := range r.MakerFees {
		fees[i] = wireMakerFeeInfo{
			MakerIndex:        f.MakerIndex,
			MakerAddress:      f.MakerAddress,
			BaseFee:           f.BaseFee,
			AmountRelativeFee: f.AmountRelativeFee,
			TimeRelativeFee:   f.TimeRelativeFee,
			TotalFee:          f.TotalFee,
		}
	}
	if r.MakerFees == nil {
		fees = nil
	}
	toWire := func(in []UTXOWithAddress) []wireUTXOWithAddress {
		if in == nil {
			return nil
		}
		out := make([]wireUTXOWithAddress, len(in))
		for i, u := range in {
			out[i] = wireUTXOWithAddress{Amount: u.Amount, Address: u.Address}
		}
		return out
	}
	return json.Marshal(wireSwapReport{
		SwapID:              r.SwapID,
		SwapDurationSeconds: r.SwapDurationSeconds,
		TargetAmount:        r.TargetAmount,
		TotalInputAmount:    r.TotalInputAmount,
		TotalOutputAmount:   r.TotalOutputAmount,
		MakersCount:         r.MakersCount,
		MakerAddresses:      r.MakerAddresses,
		TotalFundingTxs:     r.TotalFundingTxs,
		FundingTxidsByHop:   byHop,
		TotalFee:            r.TotalFee,
		TotalMakerFees:      r.TotalMakerFees,
		MiningFee:           r.MiningFee,
		FeePercentage:       r.FeePercentage,
		MakerFees:           fees,
		InputAmounts:        r.InputAmounts,
		OutputChangeAmounts: r.OutputChangeAmounts,
		OutputSwapAmounts:   r.OutputSwapAmounts,
		OutputChangeUTXOs:   toWire(r.OutputChangeUTXOs),
		OutputSwapUTXOs:     toWire(r.OutputSwapUTXOs),
	})
}

// DisplayOffer renders an offer's fee schedule and size limits as indented
// JSON for human consumption. Keys, proof material and maker identity are
// deliberately left out.
func DisplayOffer(o Offer) (string, error) {
	summary := struct {
		BaseFee              int64   `json:"base_fee"`
		AmountRelativeFeePct float64 `json:"amount_relative_fee_pct"`
		TimeRelativeFeePct   float64 `json:"time_relative_fee_pct"`
		RequiredConfirms     uint32  `json:"required_confirms"`
		MinimumLocktime      uint16  `json:"minimum_locktime"`
		MaxSize              int64   `json:"max_size"`
		MinSize              int64   `json:"min_size"`
	}{
		BaseFee:              o.BaseFee,
		AmountRelativeFeePct: o.AmountRelativeFeePct,
		TimeRelativeFeePct:   o.TimeRelativeFeePct,
		RequiredConfirms:     o.RequiredConfirms,
		MinimumLocktime:      o.MinimumLocktime,
		MaxSize:              o.MaxSize,
		MinSize:              o.MinSize,
	}
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", encodingErr("display offer", err)
	}
	return string(out), nil
}

// ---- request encoding ------------------------------------------------------

func encodeInitRequest(opts InitOptions) ([]byte, error) {
	if opts.ZmqAddr == "" {
		return nil, encodingErrf("init: zmq address must not be empty")
	}
	var rpc *wireRPCConfig
	if opts.RPC != nil {
		rpc = &wireRPCConfig{
			URL:        opts.RPC.URL,
			Username:   opts.RPC.Username,
			Password:   opts.RPC.Password,
			WalletName: opts.RPC.WalletName,
		}
	}
	raw, err := json.Marshal(wireInitRequest{
		DataDir:         opts.DataDir,
		WalletFileName:  opts.WalletFileName,
		RPCConfig:       rpc,
		ControlPort:     opts.ControlPort,
		TorAuthPassword: opts.TorAuthPassword,
		ZmqAddr:         opts.ZmqAddr,
		Password:        opts.Password,
	})
	if err != nil {
		return nil, encodingErr("encode init request", err)
	}
	return raw, nil
}

func encodeAddressTypeRequest(t AddressType) ([]byte, error) {
	switch t {
	case AddressP2WPKH, AddressP2TR:
	default:
		return nil, encodingErrf("unknown address type %d", int(t))
	}
	raw, err := json.Marshal(wireAddressTypeRequest{AddrType: t.String()})
	if err != nil {
		return nil, encodingErr("encode address type", err)
	}
	return raw, nil
}

func encodeInternalAddressesRequest(count uint32, t AddressType) ([]byte, error) {
	switch t {
	case AddressP2WPKH, AddressP2TR:
	default:
		return nil, encodingErrf("unknown address type %d", int(t))
	}
	if count == 0 {
		return nil, encodingErrf("internal addresses: count must be at least 1")
	}
	raw, err := json.Marshal(wireInternalAddressesRequest{Count: count, AddrType: t.String()})
	if err != nil {
		return nil, encodingErr("encode internal addresses request", err)
	}
	return raw, nil
}

func encodeTransactionsRequest(count, skip *uint32) ([]byte, error) {
	raw, err := json.Marshal(wireTransactionsRequest{Count: count, Skip: skip})
	if err != nil {
		return nil, encodingErr("encode transactions request", err)
	}
	return raw, nil
}

func encodeSendRequest(address string, amount int64, feeRate *float64, outpoints []OutPoint) ([]byte, error) {
	if address == "" {
		return nil, encodingErrf("send: address must not be empty")
	}
	if amount < 0 {
		return nil, encodingErrf("send: amount must not be negative (got %d)", amount)
	}
	for _, op := range outpoints {
		if _, err := parseTxid(string(op.Txid)); err != nil {
			return nil, encodingErr("encode send request", err)
		}
	}
	raw, err := json.Marshal(wireSendRequest{
		Address:   address,
		Amount:    amount,
		FeeRate:   feeRate,
		OutPoints: outPointsToWire(outpoints),
	})
	if err != nil {
		return nil, encodingErr("encode send request", err)
	}
	return raw, nil
}

func encodeSwapRequest(params SwapParams) ([]byte, error) {
	if params.MakerCount == 0 {
		return nil, encodingErrf("swap: maker count must be at least 1")
	}
	for _, op := range params.SelectedOutpoints {
		if _, err := parseTxid(string(op.Txid)); err != nil {
			return nil, encodingErr("encode swap request", err)
		}
	}
	raw, err := json.Marshal(wireSwapRequest{
		SendAmount: params.SendAmount,
		MakerCount: params.MakerCount,
		OutPoints:  outPointsToWire(params.SelectedOutpoints),
	})
	if err != nil {
		return nil, encodingErr("encode swap request", err)
	}
	return raw, nil
}

func encodeBackupRequest(destination string, password *string) ([]byte, error) {
	if destination == "" {
		return nil, encodingErrf("backup: destination path must not be empty")
	}
	raw, err := json.Marshal(wireBackupRequest{DestinationPath: destination, Password: password})
	if err != nil {
		return nil, encodingErr("encode backup request", err)
	}
	return raw, nil
}

func encodeRestoreRequest(opts RestoreOptions) ([]byte, error) {
	if opts.BackupFilePath == "" {
		return nil, encodingErrf("restore: backup file path must not be empty")
	}
	raw, err := json.Marshal(wireRestoreRequest{
		DataDir:        opts.DataDir,
		WalletFileName: opts.WalletFileName,
		RPCConfig: wireRPCConfig{
			URL:        opts.RPC.URL,
			Username:   opts.RPC.Username,
			Password:   opts.RPC.Password,
			WalletName: opts.RPC.WalletName,
		},
		BackupFilePath: opts.BackupFilePath,
		Password:       opts.Password,
	})
	if err != nil {
		return nil, encodingErr("encode restore request", err)
	}
	return raw, nil
}

func encodeWalletPathRequest(path string) ([]byte, error) {
	if path == "" {
		return nil, encodingErrf("wallet path must not be empty")
	}
	raw, err := json.Marshal(wireWalletPathRequest{WalletPath: path})
	if err != nil {
		return nil, encodingErr("encode wallet path", err)
	}
	return raw, nil
}

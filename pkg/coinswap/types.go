package coinswap

// Value types crossing the boundary. Every value returned by a Taker
// operation is a deep copy owned entirely by the caller; nothing references
// engine memory once a call has returned.
//
// Monetary amounts are always int64 satoshis. Floating point appears only in
// percentage, ratio and duration fields; pkg/coinswap/internalcheck enforces
// this at build time.

// Txid is a transaction id in its canonical 64-hex-digit display form.
type Txid string

// Script is a raw Bitcoin script.
type Script []byte

// OutPoint references one output of a confirmed transaction.
type OutPoint struct {
	Txid Txid
	Vout uint32
}

// AddressType selects the script type for newly derived addresses.
type AddressType int

const (
	AddressP2WPKH AddressType = iota
	AddressP2TR
)

func (t AddressType) String() string {
	switch t {
	case AddressP2WPKH:
		return "P2WPKH"
	case AddressP2TR:
		return "P2TR"
	default:
		return "unknown"
	}
}

// Balances is the wallet balance breakdown in satoshis.
type Balances struct {
	Regular   int64
	Swap      int64
	Contract  int64
	Fidelity  int64
	Spendable int64
}

// TxInfo is the wallet-level metadata of a transaction.
type TxInfo struct {
	Confirmations     int32
	BlockHash         *string
	BlockIndex        *uint32
	BlockTime         *int64
	BlockHeight       *uint32
	Txid              Txid
	Time              int64
	TimeReceived      int64
	BIP125Replaceable string
	WalletConflicts   []Txid
}

// TxDetail is the per-output detail of a wallet transaction. Amount and Fee
// are signed satoshis (negative for outgoing).
type TxDetail struct {
	Address   *string
	Category  string
	Amount    int64
	Label     *string
	Vout      uint32
	Fee       *int64
	Abandoned *bool
}

// WalletTransaction is one entry of the wallet's transaction list.
type WalletTransaction struct {
	Info    TxInfo
	Detail  TxDetail
	Trusted *bool
	Comment *string
}

// UTXO mirrors a listunspent entry for one wallet output.
type UTXO struct {
	Txid          Txid
	Vout          uint32
	Address       *string
	Label         *string
	ScriptPubKey  Script
	Amount        int64
	Confirmations uint32
	RedeemScript  *Script
	WitnessScript *Script
	Spendable     bool
	Solvable      bool
	Descriptor    *string
	Safe          bool
}

// SpendKind classifies how the wallet can spend a UTXO. The set is closed;
// an unrecognized kind from the engine is a decode error.
type SpendKind int

const (
	SpendSeedCoin SpendKind = iota
	SpendIncomingSwapCoin
	SpendOutgoingSwapCoin
	SpendTimelockContract
	SpendHashlockContract
	SpendFidelityBondCoin
	SpendSweptCoin
)

func (k SpendKind) String() string {
	switch k {
	case SpendSeedCoin:
		return "SeedCoin"
	case SpendIncomingSwapCoin:
		return "IncomingSwapCoin"
	case SpendOutgoingSwapCoin:
		return "OutgoingSwapCoin"
	case SpendTimelockContract:
		return "TimelockContract"
	case SpendHashlockContract:
		return "HashlockContract"
	case SpendFidelityBondCoin:
		return "FidelityBondCoin"
	case SpendSweptCoin:
		return "SweptCoin"
	default:
		return "unknown"
	}
}

// UTXOSpendInfo carries the kind-specific spending data for a UTXO. Only the
// fields applicable to Kind are set; the rest stay nil.
type UTXOSpendInfo struct {
	Kind                 SpendKind
	Path                 *string
	MultisigRedeemScript *Script
	InputValue           *int64
	BondIndex            *uint32
}

// UTXOInfo pairs a wallet UTXO with its spend information.
type UTXOInfo struct {
	Entry UTXO
	Spend UTXOSpendInfo
}

// FeeRates are mempool fee estimates in sat/vB for three confirmation
// targets. These are rates, not amounts, hence the floats.
type FeeRates struct {
	Fastest  float64
	Standard float64
	Economy  float64
}

// LockTimeKind discriminates the two consensus locktime interpretations.
type LockTimeKind int

const (
	LockTimeBlocks LockTimeKind = iota
	LockTimeSeconds
)

func (k LockTimeKind) String() string {
	switch k {
	case LockTimeBlocks:
		return "Blocks"
	case LockTimeSeconds:
		return "Seconds"
	default:
		return "unknown"
	}
}

// LockTime is an absolute locktime.
type LockTime struct {
	Kind  LockTimeKind
	Value uint32
}

// PublicKey is a secp256k1 public key in SEC serialization.
type PublicKey struct {
	Compressed bool
	Key        []byte
}

// FidelityBond is a maker's time-locked bond output.
type FidelityBond struct {
	Amount   int64
	LockTime LockTime
	Pubkey   PublicKey
}

// FidelityProof certifies a maker's fidelity bond.
type FidelityProof struct {
	Bond     FidelityBond
	CertHash []byte
	CertSig  []byte
}

// Offer is a maker's advertised swap terms. Sizes and the base fee are
// satoshis; the relative fees are percentages.
type Offer struct {
	BaseFee              int64
	AmountRelativeFeePct float64
	TimeRelativeFeePct   float64
	RequiredConfirms     uint32
	MinimumLocktime      uint16
	MaxSize              int64
	MinSize              int64
	TweakablePoint       PublicKey
	Fidelity             FidelityProof
}

// MakerStatus is the connection state of a maker in the offerbook.
type MakerStatus int

const (
	MakerGood MakerStatus = iota
	MakerUnresponsive
	MakerBad
)

func (s MakerStatus) String() string {
	switch s {
	case MakerGood:
		return "Good"
	case MakerUnresponsive:
		return "Unresponsive"
	case MakerBad:
		return "Bad"
	default:
		return "unknown"
	}
}

// MakerState is the offerbook's view of one maker. Retries is set only for
// MakerUnresponsive.
type MakerState struct {
	Status  MakerStatus
	Retries *uint8
}

// MakerProtocol is the swap protocol a maker speaks.
type MakerProtocol int

const (
	ProtocolLegacy MakerProtocol = iota
	ProtocolTaproot
)

func (p MakerProtocol) String() string {
	switch p {
	case ProtocolLegacy:
		return "Legacy"
	case ProtocolTaproot:
		return "Taproot"
	default:
		return "unknown"
	}
}

// OfferCandidate is one maker entry in the offerbook. Offer and Protocol are
// nil until the maker has been probed successfully.
type OfferCandidate struct {
	Address  string
	Offer    *Offer
	State    MakerState
	Protocol *MakerProtocol
}

// OfferBook is the engine's current view of available makers.
type OfferBook struct {
	Makers []OfferCandidate
}

// SwapParams describes one coinswap request. SelectedOutpoints restricts
// input selection to the given UTXOs; nil lets the wallet choose.
type SwapParams struct {
	SendAmount        uint64
	MakerCount        uint32
	SelectedOutpoints []OutPoint
}

// MakerFeeInfo is the fee breakdown for one maker hop, in satoshis.
type MakerFeeInfo struct {
	MakerIndex        uint32
	MakerAddress      string
	BaseFee           int64
	AmountRelativeFee int64
	TimeRelativeFee   int64
	TotalFee          int64
}

// UTXOWithAddress is a created output with the address it pays to.
type UTXOWithAddress struct {
	Amount  int64
	Address string
}

// SwapReport summarizes a completed coinswap. All amounts are satoshis;
// FeePercentage and SwapDurationSeconds are the only ratio/duration fields.
type SwapReport struct {
	SwapID              string
	SwapDurationSeconds float64
	TargetAmount        int64
	TotalInputAmount    int64
	TotalOutputAmount   int64
	MakersCount         uint32
	MakerAddresses      []string
	TotalFundingTxs     int64
	FundingTxidsByHop   [][]Txid
	TotalFee            int64
	TotalMakerFees      int64
	MiningFee           int64
	FeePercentage       float64
	MakerFees           []MakerFeeInfo
	InputAmounts        []int64
	OutputChangeAmounts []int64
	OutputSwapAmounts   []int64
	OutputChangeUTXOs   []UTXOWithAddress
	OutputSwapUTXOs     []UTXOWithAddress
}

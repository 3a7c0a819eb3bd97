package contract

// Taker returns the boundary contract of the taker engine. Field names match
// the exported Go structs in pkg/coinswap one-to-one so tests can cross-check
// the two by reflection; wire names are the snake_case form of these.
func Taker() *Definition {
	return &Definition{
		Enums: []Enum{
			{Name: "AddressType", Variants: []string{"P2WPKH", "P2TR"}},
			{Name: "SpendKind", Variants: []string{
				"SeedCoin", "IncomingSwapCoin", "OutgoingSwapCoin",
				"TimelockContract", "HashlockContract", "FidelityBondCoin",
				"SweptCoin",
			}},
			{Name: "LockTimeKind", Variants: []string{"Blocks", "Seconds"}},
			{Name: "MakerStatus", Variants: []string{"Good", "Unresponsive", "Bad"}},
			{Name: "MakerProtocol", Variants: []string{"Legacy", "Taproot"}},
		},

		Records: []Record{
			{Name: "OutPoint", Fields: []Field{
				{Name: "Txid", Type: Type{Kind: String}},
				{Name: "Vout", Type: Type{Kind: UInt32}},
			}},
			{Name: "Balances", Fields: []Field{
				{Name: "Regular", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "Swap", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "Contract", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "Fidelity", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "Spendable", Type: Type{Kind: Int64}, Unit: UnitSats},
			}},
			{Name: "TxInfo", Fields: []Field{
				{Name: "Confirmations", Type: Type{Kind: Int32}},
				{Name: "BlockHash", Type: Type{Kind: String}, Optional: true},
				{Name: "BlockIndex", Type: Type{Kind: UInt32}, Optional: true},
				{Name: "BlockTime", Type: Type{Kind: Int64}, Optional: true},
				{Name: "BlockHeight", Type: Type{Kind: UInt32}, Optional: true},
				{Name: "Txid", Type: Type{Kind: String}},
				{Name: "Time", Type: Type{Kind: Int64}},
				{Name: "TimeReceived", Type: Type{Kind: Int64}},
				{Name: "BIP125Replaceable", Type: Type{Kind: String}},
				{Name: "WalletConflicts", Type: list(Type{Kind: String})},
			}},
			{Name: "TxDetail", Fields: []Field{
				{Name: "Address", Type: Type{Kind: String}, Optional: true},
				{Name: "Category", Type: Type{Kind: String}},
				{Name: "Amount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "Label", Type: Type{Kind: String}, Optional: true},
				{Name: "Vout", Type: Type{Kind: UInt32}},
				{Name: "Fee", Type: Type{Kind: Int64}, Optional: true, Unit: UnitSats},
				{Name: "Abandoned", Type: Type{Kind: Bool}, Optional: true},
			}},
			{Name: "WalletTransaction", Fields: []Field{
				{Name: "Info", Type: record("TxInfo")},
				{Name: "Detail", Type: record("TxDetail")},
				{Name: "Trusted", Type: Type{Kind: Bool}, Optional: true},
				{Name: "Comment", Type: Type{Kind: String}, Optional: true},
			}},
			{Name: "UTXO", Fields: []Field{
				{Name: "Txid", Type: Type{Kind: String}},
				{Name: "Vout", Type: Type{Kind: UInt32}},
				{Name: "Address", Type: Type{Kind: String}, Optional: true},
				{Name: "Label", Type: Type{Kind: String}, Optional: true},
				{Name: "ScriptPubKey", Type: Type{Kind: Bytes}},
				{Name: "Amount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "Confirmations", Type: Type{Kind: UInt32}},
				{Name: "RedeemScript", Type: Type{Kind: Bytes}, Optional: true},
				{Name: "WitnessScript", Type: Type{Kind: Bytes}, Optional: true},
				{Name: "Spendable", Type: Type{Kind: Bool}},
				{Name: "Solvable", Type: Type{Kind: Bool}},
				{Name: "Descriptor", Type: Type{Kind: String}, Optional: true},
				{Name: "Safe", Type: Type{Kind: Bool}},
			}},
			{Name: "UTXOSpendInfo", Fields: []Field{
				{Name: "Kind", Type: enum("SpendKind")},
				{Name: "Path", Type: Type{Kind: String}, Optional: true},
				{Name: "MultisigRedeemScript", Type: Type{Kind: Bytes}, Optional: true},
				{Name: "InputValue", Type: Type{Kind: Int64}, Optional: true, Unit: UnitSats},
				{Name: "BondIndex", Type: Type{Kind: UInt32}, Optional: true},
			}},
			{Name: "UTXOInfo", Fields: []Field{
				{Name: "Entry", Type: record("UTXO")},
				{Name: "Spend", Type: record("UTXOSpendInfo")},
			}},
			{Name: "FeeRates", Fields: []Field{
				{Name: "Fastest", Type: Type{Kind: Float64}, Unit: UnitRatio},
				{Name: "Standard", Type: Type{Kind: Float64}, Unit: UnitRatio},
				{Name: "Economy", Type: Type{Kind: Float64}, Unit: UnitRatio},
			}},
			{Name: "LockTime", Fields: []Field{
				{Name: "Kind", Type: enum("LockTimeKind")},
				{Name: "Value", Type: Type{Kind: UInt32}},
			}},
			{Name: "PublicKey", Fields: []Field{
				{Name: "Compressed", Type: Type{Kind: Bool}},
				{Name: "Key", Type: Type{Kind: Bytes}},
			}},
			{Name: "FidelityBond", Fields: []Field{
				{Name: "Amount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "LockTime", Type: record("LockTime")},
				{Name: "Pubkey", Type: record("PublicKey")},
			}},
			{Name: "FidelityProof", Fields: []Field{
				{Name: "Bond", Type: record("FidelityBond")},
				{Name: "CertHash", Type: Type{Kind: Bytes}},
				{Name: "CertSig", Type: Type{Kind: Bytes}},
			}},
			{Name: "Offer", Fields: []Field{
				{Name: "BaseFee", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "AmountRelativeFeePct", Type: Type{Kind: Float64}, Unit: UnitRatio},
				{Name: "TimeRelativeFeePct", Type: Type{Kind: Float64}, Unit: UnitRatio},
				{Name: "RequiredConfirms", Type: Type{Kind: UInt32}},
				{Name: "MinimumLocktime", Type: Type{Kind: UInt16}},
				{Name: "MaxSize", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "MinSize", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "TweakablePoint", Type: record("PublicKey")},
				{Name: "Fidelity", Type: record("FidelityProof")},
			}},
			{Name: "MakerState", Fields: []Field{
				{Name: "Status", Type: enum("MakerStatus")},
				{Name: "Retries", Type: Type{Kind: UInt8}, Optional: true},
			}},
			{Name: "OfferCandidate", Fields: []Field{
				{Name: "Address", Type: Type{Kind: String}},
				{Name: "Offer", Type: record("Offer"), Optional: true},
				{Name: "State", Type: record("MakerState")},
				{Name: "Protocol", Type: enum("MakerProtocol"), Optional: true},
			}},
			{Name: "OfferBook", Fields: []Field{
				{Name: "Makers", Type: list(record("OfferCandidate"))},
			}},
			{Name: "SwapParams", Fields: []Field{
				{Name: "SendAmount", Type: Type{Kind: UInt64}, Unit: UnitSats},
				{Name: "MakerCount", Type: Type{Kind: UInt32}},
				{Name: "SelectedOutpoints", Type: list(record("OutPoint")), Optional: true},
			}},
			{Name: "MakerFeeInfo", Fields: []Field{
				{Name: "MakerIndex", Type: Type{Kind: UInt32}},
				{Name: "MakerAddress", Type: Type{Kind: String}},
				{Name: "BaseFee", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "AmountRelativeFee", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "TimeRelativeFee", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "TotalFee", Type: Type{Kind: Int64}, Unit: UnitSats},
			}},
			{Name: "UTXOWithAddress", Fields: []Field{
				{Name: "Amount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "Address", Type: Type{Kind: String}},
			}},
			{Name: "SwapReport", Fields: []Field{
				{Name: "SwapID", Type: Type{Kind: String}},
				{Name: "SwapDurationSeconds", Type: Type{Kind: Float64}, Unit: UnitRatio},
				{Name: "TargetAmount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "TotalInputAmount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "TotalOutputAmount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "MakersCount", Type: Type{Kind: UInt32}},
				{Name: "MakerAddresses", Type: list(Type{Kind: String})},
				{Name: "TotalFundingTxs", Type: Type{Kind: Int64}},
				{Name: "FundingTxidsByHop", Type: list(list(Type{Kind: String}))},
				{Name: "TotalFee", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "TotalMakerFees", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "MiningFee", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "FeePercentage", Type: Type{Kind: Float64}, Unit: UnitRatio},
				{Name: "MakerFees", Type: list(record("MakerFeeInfo"))},
				{Name: "InputAmounts", Type: list(Type{Kind: Int64}), Unit: UnitSats},
				{Name: "OutputChangeAmounts", Type: list(Type{Kind: Int64}), Unit: UnitSats},
				{Name: "OutputSwapAmounts", Type: list(Type{Kind: Int64}), Unit: UnitSats},
				{Name: "OutputChangeUTXOs", Type: list(record("UTXOWithAddress"))},
				{Name: "OutputSwapUTXOs", Type: list(record("UTXOWithAddress"))},
			}},
			{Name: "RPCConfig", Fields: []Field{
				{Name: "URL", Type: Type{Kind: String}},
				{Name: "Username", Type: Type{Kind: String}},
				{Name: "Password", Type: Type{Kind: String}},
				{Name: "WalletName", Type: Type{Kind: String}},
			}},
			{Name: "InitOptions", Fields: []Field{
				// DataDir and WalletFileName collapse absence into the empty
				// string; the engine default applies either way.
				{Name: "DataDir", Type: Type{Kind: String}},
				{Name: "WalletFileName", Type: Type{Kind: String}},
				{Name: "RPC", Type: record("RPCConfig"), Optional: true},
				{Name: "ControlPort", Type: Type{Kind: UInt16}, Optional: true},
				{Name: "TorAuthPassword", Type: Type{Kind: String}, Optional: true},
				{Name: "ZmqAddr", Type: Type{Kind: String}},
				{Name: "Password", Type: Type{Kind: String}, Optional: true},
			}},
			{Name: "RestoreOptions", Fields: []Field{
				{Name: "DataDir", Type: Type{Kind: String}},
				{Name: "WalletFileName", Type: Type{Kind: String}},
				{Name: "RPC", Type: record("RPCConfig")},
				{Name: "BackupFilePath", Type: Type{Kind: String}},
				{Name: "Password", Type: Type{Kind: String}, Optional: true},
			}},
		},

		Functions: []Function{
			{Name: "init", Params: []Field{
				{Name: "options", Type: record("InitOptions")},
			}, Blocking: true},
			{Name: "free"},
			{Name: "get_balances", Result: &Type{Kind: RecordRef, Ref: "Balances"}},
			{Name: "get_next_external_address", Params: []Field{
				{Name: "address_type", Type: enum("AddressType")},
			}, Result: &Type{Kind: String}},
			{Name: "get_next_internal_addresses", Params: []Field{
				{Name: "count", Type: Type{Kind: UInt32}},
				{Name: "address_type", Type: enum("AddressType")},
			}, Result: &Type{Kind: List, Elem: &Type{Kind: String}}},
			{Name: "get_transactions", Params: []Field{
				{Name: "count", Type: Type{Kind: UInt32}, Optional: true},
				{Name: "skip", Type: Type{Kind: UInt32}, Optional: true},
			}, Result: &Type{Kind: List, Elem: &Type{Kind: RecordRef, Ref: "WalletTransaction"}}},
			{Name: "list_all_utxo_spend_info",
				Result: &Type{Kind: List, Elem: &Type{Kind: RecordRef, Ref: "UTXOInfo"}}},
			{Name: "lock_unspendable_utxos"},
			{Name: "send_to_address", Params: []Field{
				{Name: "address", Type: Type{Kind: String}},
				{Name: "amount", Type: Type{Kind: Int64}, Unit: UnitSats},
				{Name: "fee_rate", Type: Type{Kind: Float64}, Optional: true, Unit: UnitRatio},
				{Name: "outpoints", Type: list(record("OutPoint")), Optional: true},
			}, Result: &Type{Kind: String}, Blocking: true},
			{Name: "fetch_offers", Result: &Type{Kind: RecordRef, Ref: "OfferBook"}, Blocking: true},
			{Name: "get_all_maker_addresses",
				Result: &Type{Kind: List, Elem: &Type{Kind: String}}},
			{Name: "is_offerbook_syncing", Result: &Type{Kind: Bool}, NeverFails: true},
			{Name: "run_offer_sync_now"},
			{Name: "do_coinswap", Params: []Field{
				{Name: "params", Type: record("SwapParams")},
			}, Result: &Type{Kind: RecordRef, Ref: "SwapReport"}, OptionalResult: true, Blocking: true},
			{Name: "sync_and_save", Blocking: true},
			{Name: "backup", Params: []Field{
				{Name: "backup_path", Type: Type{Kind: String}},
				{Name: "password", Type: Type{Kind: String}, Optional: true},
			}},
			{Name: "recover_from_swap", Blocking: true},
			{Name: "wallet_name", Result: &Type{Kind: String}},
			{Name: "display_offer", Params: []Field{
				{Name: "offer", Type: record("Offer")},
			}, Result: &Type{Kind: String}},
			{Name: "setup_logging", Params: []Field{
				{Name: "data_dir", Type: Type{Kind: String}, Optional: true},
				{Name: "level", Type: Type{Kind: String}},
			}},
			{Name: "fetch_mempool_fees", Result: &Type{Kind: RecordRef, Ref: "FeeRates"}, Blocking: true},
			{Name: "is_wallet_encrypted", Params: []Field{
				{Name: "wallet_path", Type: Type{Kind: String}},
			}, Result: &Type{Kind: Bool}},
			{Name: "restore_wallet", Params: []Field{
				{Name: "options", Type: record("RestoreOptions")},
			}, Blocking: true},
		},

		ErrorCategories: []string{
			"general", "wallet", "network", "protocol", "io", "encoding",
		},
	}
}

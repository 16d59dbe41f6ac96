package domain

// WithdrawOptions selects the network tier the withdrawn tokens land on.
type WithdrawOptions struct {
	SendToMainnet bool
}

type WithdrawReceipt struct {
	From            string `json:"from"`
	To              string `json:"to"`
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	Status          uint64 `json:"status"`
}

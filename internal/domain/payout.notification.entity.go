package domain

// PayoutNotification is the body reported to the payout service. Both address
// spellings are sent because receivers in the wild read either one.
type PayoutNotification struct {
	Amount          string `json:"amount"`
	Secret          string `json:"SECRET_KEY"`
	EthAddress      string `json:"eth_address"`
	EthAddressCamel string `json:"ethAddress"`
	TransactionHash string `json:"transactionHash"`
}

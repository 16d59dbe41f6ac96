package domain

import "context"

// Wallet is a member session authenticated by a private key.
type Wallet interface {
	// Address returns the checksummed address derived from the key.
	Address(ctx context.Context) (string, error)

	// DataUnion resolves the data union whose main-chain contract lives at contractAddress.
	DataUnion(ctx context.Context, contractAddress string) (DataUnion, error)
}

// DataUnion is a handle on the side-chain contract of one data union, bound to a Wallet.
type DataUnion interface {
	Address() string
	MemberStats(ctx context.Context, member string) (RawMemberStats, error)
	SignWithdrawAllTo(ctx context.Context, recipient string) (string, error)
	WithdrawAllToSigned(ctx context.Context, from, recipient, signature string, opts WithdrawOptions) (WithdrawReceipt, error)
}

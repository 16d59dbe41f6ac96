package repository

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
)

// ChainBackend is the subset of *ethclient.Client the data union adapter uses.
type ChainBackend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// EthereumConnector authenticates members with their private key and binds
// data union handles to the side-chain contract.
type EthereumConnector struct {
	sidechain        ChainBackend
	mainchain        ChainBackend
	sidechainAddress common.Address
	logger           *slog.Logger
}

// NewEthereumConnector accepts a nil mainchain, in which case the main-chain
// contract is not checked for existence.
func NewEthereumConnector(sidechain, mainchain ChainBackend, cfg domain.WithdrawConfig, logger *slog.Logger) (*EthereumConnector, error) {
	if sidechain == nil {
		return nil, fmt.Errorf("repository: side-chain backend is required")
	}
	if !common.IsHexAddress(cfg.SidechainAddress) {
		return nil, fmt.Errorf("repository: invalid side-chain address %q", cfg.SidechainAddress)
	}

	return &EthereumConnector{
		sidechain:        sidechain,
		mainchain:        mainchain,
		sidechainAddress: common.HexToAddress(cfg.SidechainAddress),
		logger:           logger,
	}, nil
}

func (c *EthereumConnector) Connect(_ context.Context, privateKey string) (domain.Wallet, error) {
	hexKey := strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("repository: invalid member private key: %w", err)
	}

	return &ethereumWallet{
		connector: c,
		key:       key,
		address:   crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

type ethereumWallet struct {
	connector *EthereumConnector
	key       *ecdsa.PrivateKey
	address   common.Address
}

func (w *ethereumWallet) Address(_ context.Context) (string, error) {
	return w.address.Hex(), nil
}

func (w *ethereumWallet) DataUnion(ctx context.Context, contractAddress string) (domain.DataUnion, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("repository: invalid data union address %q: %w", contractAddress, vo.ErrDataUnionNotFound)
	}

	c := w.connector
	if c.mainchain != nil {
		if err := requireCode(ctx, c.mainchain, common.HexToAddress(contractAddress)); err != nil {
			return nil, fmt.Errorf("repository: main-chain data union: %w", err)
		}
	}
	if err := requireCode(ctx, c.sidechain, c.sidechainAddress); err != nil {
		return nil, fmt.Errorf("repository: side-chain data union: %w", err)
	}

	c.logger.Debug("data union resolved", "contract_address", contractAddress, "sidechain_address", c.sidechainAddress.Hex())

	return &ethereumDataUnion{
		wallet:   w,
		backend:  c.sidechain,
		address:  c.sidechainAddress,
		contract: bind.NewBoundContract(c.sidechainAddress, parsedDataUnionABI, c.sidechain, c.sidechain, c.sidechain),
		logger:   c.logger,
	}, nil
}

func requireCode(ctx context.Context, backend ChainBackend, address common.Address) error {
	code, err := backend.CodeAt(ctx, address, nil)
	if err != nil {
		return fmt.Errorf("failed to read code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return fmt.Errorf("no contract at %s: %w", address.Hex(), vo.ErrDataUnionNotFound)
	}
	return nil
}

type ethereumDataUnion struct {
	wallet   *ethereumWallet
	backend  ChainBackend
	address  common.Address
	contract *bind.BoundContract
	logger   *slog.Logger
}

func (d *ethereumDataUnion) Address() string {
	return d.address.Hex()
}

func (d *ethereumDataUnion) memberData(ctx context.Context, member common.Address) (memberData, error) {
	var out []interface{}
	if err := d.contract.Call(&bind.CallOpts{Context: ctx}, &out, "memberData", member); err != nil {
		return memberData{}, fmt.Errorf("repository: memberData call failed: %w", err)
	}

	data, err := decodeMemberData(out)
	if err != nil {
		return memberData{}, fmt.Errorf("repository: %w", err)
	}
	return data, nil
}

func (d *ethereumDataUnion) MemberStats(ctx context.Context, member string) (domain.RawMemberStats, error) {
	if !common.IsHexAddress(member) {
		return domain.RawMemberStats{}, fmt.Errorf("repository: invalid member address %q", member)
	}
	address := common.HexToAddress(member)

	data, err := d.memberData(ctx, address)
	if err != nil {
		return domain.RawMemberStats{}, err
	}
	if data.status == domain.MemberStatusNone {
		return domain.RawMemberStats{}, fmt.Errorf("repository: %s: %w", address.Hex(), vo.ErrNotMember)
	}

	var out []interface{}
	if err := d.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getEarnings", address); err != nil {
		return domain.RawMemberStats{}, fmt.Errorf("repository: getEarnings call failed: %w", err)
	}
	if len(out) != 1 {
		return domain.RawMemberStats{}, fmt.Errorf("repository: getEarnings returned %d values", len(out))
	}
	total, ok := out[0].(*big.Int)
	if !ok {
		return domain.RawMemberStats{}, fmt.Errorf("repository: getEarnings returned %T", out[0])
	}

	withdrawable := new(big.Int).Sub(total, data.withdrawnEarnings)
	if withdrawable.Sign() < 0 {
		withdrawable.SetInt64(0)
	}

	return domain.RawMemberStats{
		Status:                 data.status,
		EarningsBeforeLastJoin: hexutil.EncodeBig(data.earningsBeforeLastJoin),
		TotalEarnings:          hexutil.EncodeBig(total),
		WithdrawableEarnings:   hexutil.EncodeBig(withdrawable),
	}, nil
}

// SignWithdrawAllTo signs the message the side-chain contract verifies in
// withdrawAllToSigned: recipient, amount zero meaning "everything", contract
// address and the member's withdrawn total so far.
func (d *ethereumDataUnion) SignWithdrawAllTo(ctx context.Context, recipient string) (string, error) {
	if !common.IsHexAddress(recipient) {
		return "", fmt.Errorf("repository: invalid recipient address %q", recipient)
	}

	data, err := d.memberData(ctx, d.wallet.address)
	if err != nil {
		return "", err
	}
	if data.status == domain.MemberStatusNone {
		return "", fmt.Errorf("repository: %s: %w", d.wallet.address.Hex(), vo.ErrNotMember)
	}

	message := withdrawAllMessage(common.HexToAddress(recipient), d.address, data.withdrawnEarnings)
	signature, err := signPersonalMessage(message, d.wallet.key)
	if err != nil {
		return "", fmt.Errorf("repository: failed to sign withdrawal: %w", err)
	}

	return hexutil.Encode(signature), nil
}

func (d *ethereumDataUnion) WithdrawAllToSigned(ctx context.Context, from, recipient, signature string, opts domain.WithdrawOptions) (domain.WithdrawReceipt, error) {
	if !common.IsHexAddress(from) || !common.IsHexAddress(recipient) {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: invalid withdraw addresses from=%q to=%q", from, recipient)
	}

	rawSignature, err := hexutil.Decode(signature)
	if err != nil {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: invalid signature: %w", err)
	}

	chainID, err := d.backend.ChainID(ctx)
	if err != nil {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: failed to read chain id: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(d.wallet.key, chainID)
	if err != nil {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: failed to build transactor: %w", err)
	}
	auth.Context = ctx

	tx, err := d.contract.Transact(auth, "withdrawAllToSigned",
		common.HexToAddress(from),
		common.HexToAddress(recipient),
		opts.SendToMainnet,
		rawSignature,
	)
	if err != nil {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: withdrawAllToSigned failed: %w", err)
	}

	d.logger.Info("withdraw transaction sent", "tx_hash", tx.Hash().Hex(), "chain_id", chainID.String(), "send_to_mainnet", opts.SendToMainnet)

	receipt, err := bind.WaitMined(ctx, d.backend, tx)
	if err != nil {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: waiting for %s: %w", tx.Hash().Hex(), err)
	}

	return receiptFromTransaction(tx, receipt, chainID)
}

func receiptFromTransaction(tx *types.Transaction, receipt *types.Receipt, chainID *big.Int) (domain.WithdrawReceipt, error) {
	if receipt.Status != types.ReceiptStatusSuccessful {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: %s: %w", receipt.TxHash.Hex(), vo.ErrTransactionReverted)
	}

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		return domain.WithdrawReceipt{}, fmt.Errorf("repository: failed to recover sender: %w", err)
	}

	result := domain.WithdrawReceipt{
		From:            sender.Hex(),
		TransactionHash: receipt.TxHash.Hex(),
		GasUsed:         receipt.GasUsed,
		Status:          receipt.Status,
	}
	if tx.To() != nil {
		result.To = tx.To().Hex()
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result, nil
}

func withdrawAllMessage(recipient, contract common.Address, withdrawn *big.Int) []byte {
	message := make([]byte, 0, common.AddressLength*2+64)
	message = append(message, recipient.Bytes()...)
	message = append(message, common.LeftPadBytes(nil, 32)...)
	message = append(message, contract.Bytes()...)
	message = append(message, common.LeftPadBytes(withdrawn.Bytes(), 32)...)
	return message
}

// signPersonalMessage produces an EIP-191 signature with v in {27, 28}.
func signPersonalMessage(message []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	signature, err := crypto.Sign(accounts.TextHash(message), key)
	if err != nil {
		return nil, err
	}
	signature[crypto.RecoveryIDOffset] += 27
	return signature, nil
}

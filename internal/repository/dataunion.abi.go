package repository

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
)

// dataUnionSidechainABI covers the DataUnionSidechain functions the job calls.
const dataUnionSidechainABI = `[
	{"type":"function","name":"memberData","stateMutability":"view",
	 "inputs":[{"name":"member","type":"address"}],
	 "outputs":[
		{"name":"status","type":"uint8"},
		{"name":"earningsBeforeLastJoin","type":"uint256"},
		{"name":"lmeAtJoin","type":"uint256"},
		{"name":"withdrawnEarnings","type":"uint256"}]},
	{"type":"function","name":"getEarnings","stateMutability":"view",
	 "inputs":[{"name":"member","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"withdrawAllToSigned","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"fromSigner","type":"address"},
		{"name":"to","type":"address"},
		{"name":"sendToMainnet","type":"bool"},
		{"name":"signature","type":"bytes"}],
	 "outputs":[{"name":"","type":"uint256"}]}
]`

var parsedDataUnionABI = mustParseABI(dataUnionSidechainABI)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("repository: invalid data union ABI: %v", err))
	}
	return parsed
}

// memberStatuses is indexed by the on-chain ActiveStatus enum.
var memberStatuses = []domain.MemberStatus{
	domain.MemberStatusNone,
	domain.MemberStatusActive,
	domain.MemberStatusInactive,
}

type memberData struct {
	status                 domain.MemberStatus
	earningsBeforeLastJoin *big.Int
	lmeAtJoin              *big.Int
	withdrawnEarnings      *big.Int
}

func decodeMemberData(out []interface{}) (memberData, error) {
	if len(out) != 4 {
		return memberData{}, fmt.Errorf("memberData returned %d values, want 4", len(out))
	}

	rawStatus, ok := out[0].(uint8)
	if !ok {
		return memberData{}, fmt.Errorf("memberData status has type %T", out[0])
	}
	if int(rawStatus) >= len(memberStatuses) {
		return memberData{}, fmt.Errorf("memberData status %d is unknown", rawStatus)
	}

	amounts := make([]*big.Int, 3)
	for i := range amounts {
		value, ok := out[i+1].(*big.Int)
		if !ok {
			return memberData{}, fmt.Errorf("memberData field %d has type %T", i+1, out[i+1])
		}
		amounts[i] = value
	}

	return memberData{
		status:                 memberStatuses[rawStatus],
		earningsBeforeLastJoin: amounts[0],
		lmeAtJoin:              amounts[1],
		withdrawnEarnings:      amounts[2],
	}, nil
}

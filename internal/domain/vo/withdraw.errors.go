package vo

import "errors"

var ErrMissingConfig = errors.New("missing required configuration")
var ErrNotMember = errors.New("address is not a member of the data union")
var ErrDataUnionNotFound = errors.New("data union contract not found")
var ErrTransactionReverted = errors.New("withdraw transaction reverted")
var ErrMarketUnavailable = errors.New("market data unavailable")

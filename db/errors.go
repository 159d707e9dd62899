package db

import "github.com/pkg/errors"

// Sentinel errors surfaced by the repositories so services can map them
// to domain-rule conflicts instead of plain database failures.
var (
	ErrAlreadyPrayed     = errors.New("user already prayed for this request")
	ErrAlreadyMember     = errors.New("user is already a member of this group")
	ErrNotMember         = errors.New("user is not a member of this group")
	ErrLeaderCannotLeave = errors.New("group leader cannot leave the group")
)

package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the parameters for the multisig module.
type Params struct {
	// Denom is the coin denomination wallets hold and transfer
	Denom string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom"`
}

// ProtoMessage implements proto.Message
func (p *Params) ProtoMessage() {}

// Reset implements proto.Message
func (p *Params) Reset() { *p = Params{} }

// String implements proto.Message
func (p *Params) String() string { return fmt.Sprintf("Params{Denom: %s}", p.Denom) }

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		Denom: DefaultDenom,
	}
}

// Validate checks the parameters are usable
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid denom %q: %w", p.Denom, err)
	}
	return nil
}

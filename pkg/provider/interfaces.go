package provider

import (
	"errors"

	"github.com/vietdv277/stratus/pkg/types"
)

// Common errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrNotConfigured = errors.New("provider not configured")
)

// SubnetSource lists live network resources a plan can be seeded from.
// The AWS client implements it; import commands are written against the
// interface so they can be exercised with fakes.
type SubnetSource interface {
	// ListVPCs returns the account's VPCs
	ListVPCs() ([]types.VPC, error)

	// ListSubnets returns the subnets of a VPC
	ListSubnets(vpcID string) ([]types.AWSSubnet, error)
}

// FleetSource lists live runner fleets a plan can be seeded from.
type FleetSource interface {
	// ListFleets returns fleets matching the optional name pattern
	ListFleets(namePattern string) ([]types.RunnerFleet, error)

	// DescribeFleet returns a single fleet by name
	DescribeFleet(name string) (*types.RunnerFleet, error)
}

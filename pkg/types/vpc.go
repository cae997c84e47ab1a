package types

// VPC represents an AWS VPC
type VPC struct {
	ID        string
	Name      string
	CIDR      string
	State     string
	IsDefault bool
	OwnerID   string
}

// AWSSubnet represents a live AWS VPC subnet as returned by EC2, before it
// is converted into plan form.
type AWSSubnet struct {
	ID           string
	Name         string
	VPCID        string
	CIDR         string
	AZ           string
	AvailableIPs int // live count reported by EC2, not the planning formula
	State        string
	Public       bool // MapPublicIpOnLaunch
}

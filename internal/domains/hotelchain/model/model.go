package model

import "ehotels/shared/model"

const (
	TableName  = "hotel_chains"
	EntityName = "hotel_chain"

	FieldID        = "hotel_chain_id"
	FieldChainName = "chain_name"
)

type HotelChain struct {
	ID                   int64  `db:"hotel_chain_id"         insert:"false"`
	ChainName            string `db:"chain_name"`
	CentralOfficeAddress string `db:"central_office_address"`
	model.Metadata
}

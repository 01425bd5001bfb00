package models

// FirstUnitID is the synthetic id given to the first indoor unit of every case.
const FirstUnitID = 256

// Unit is one physical indoor unit split into its three protocol records.
// All three carry the same unit id.
type Unit struct {
	Monitor Monitor
	Static  Static
	Dynamic Dynamic
}

// Case is one fixture scenario. Number is the 1-based position in the input.
type Case struct {
	Number int
	Units  []Unit
}

package tdf

type TransportType string

const (
	TransportTypeSkyTrain TransportType = "skytrain"
	TransportTypeBus      TransportType = "bus"
	TransportTypeWalk     TransportType = "walk"
)

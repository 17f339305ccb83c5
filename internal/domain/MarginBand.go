package domain

// Rótulos fixos das faixas de margem
const (
	MarginBandBelowTen    = "<10%"
	MarginBandTenToTwenty = "10-20%"
	MarginBandAboveTwenty = ">20%"
)

// MarginBandLabels segue a ordem das faixas no snapshot
var MarginBandLabels = [3]string{MarginBandBelowTen, MarginBandTenToTwenty, MarginBandAboveTwenty}

// MarginBand é uma faixa de margem bruta com quantidade, valor e participação
type MarginBand struct {
	Label      string  `json:"label"`
	Orders     int     `json:"orders"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

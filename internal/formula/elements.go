package formula

// Atomic masses (monoisotopic, most abundant isotope).
const (
	// ProtonMass is added per positive charge.
	ProtonMass = 1.00727646688
)

// monoMass maps an element symbol to the mass of its most abundant
// isotope.
var monoMass = map[string]float64{
	"H":  1.0078250321,
	"Li": 7.0160040000,
	"B":  11.0093055000,
	"C":  12.0000000000,
	"N":  14.0030740052,
	"O":  15.9949146221,
	"F":  18.9984032000,
	"Na": 22.9897692800,
	"Mg": 23.9850423000,
	"Si": 27.9769265300,
	"P":  30.9737615100,
	"S":  31.9720706900,
	"Cl": 34.9688527100,
	"K":  38.9637069000,
	"Ca": 39.9625912000,
	"Mn": 54.9380496000,
	"Fe": 55.9349421000,
	"Cu": 62.9296011000,
	"Zn": 63.9291466000,
	"As": 74.9215964000,
	"Se": 73.9224766000,
	"Br": 78.9183376000,
	"I":  126.9044730000,
}

// isotopeMass maps explicitly tagged isotopes, e.g. (13)C, to their
// exact masses.
var isotopeMass = map[element]float64{
	{symbol: "H", isotope: 2}:  2.0141017780,
	{symbol: "C", isotope: 13}: 13.0033548378,
	{symbol: "N", isotope: 15}: 15.0001088984,
	{symbol: "O", isotope: 18}: 17.9991604000,
	{symbol: "S", isotope: 34}: 33.9678668300,
}

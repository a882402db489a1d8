package thermal

// Category is the meat type code sent by clients.
type Category int

const (
	Pork Category = iota
	Steak
	Chicken
	Fish
	Lamb
)

type categoryInfo struct {
	name        string
	coefficient float64 // empirical heat transfer constant
	targetF     float64 // doneness target, °F
}

var categories = map[Category]categoryInfo{
	Pork:    {name: "pork", coefficient: 0.15, targetF: 145},
	Steak:   {name: "steak", coefficient: 0.18, targetF: 135},
	Chicken: {name: "chicken", coefficient: 0.12, targetF: 165},
	Fish:    {name: "fish", coefficient: 0.10, targetF: 145},
	Lamb:    {name: "lamb", coefficient: 0.16, targetF: 145},
}

// info resolves c, falling back to pork for unknown codes.
func (c Category) info() categoryInfo {
	if ci, ok := categories[c]; ok {
		return ci
	}
	return categories[Pork]
}

// Known reports whether c is one of the defined categories.
func (c Category) Known() bool {
	_, ok := categories[c]
	return ok
}

func (c Category) Name() string         { return c.info().name }
func (c Category) Coefficient() float64 { return c.info().coefficient }

// TargetF is the doneness temperature in Fahrenheit.
func (c Category) TargetF() float64 { return c.info().targetF }

// TargetC is the doneness temperature in Celsius.
func (c Category) TargetC() float64 { return FahrenheitToCelsius(c.TargetF()) }

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

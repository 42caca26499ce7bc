package types

const KphToMph = 0.621371

type Wind struct {
	SpeedInKph float64 `json:"speedKph"`
	SpeedInMph float64 `json:"speedMph"`
}

func NewWindFromKph(speedInKph float64) Wind {
	return Wind{
		SpeedInKph: speedInKph,
		SpeedInMph: speedInKph * KphToMph,
	}
}

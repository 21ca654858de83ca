package eheader

type (
	Header struct {
		MagicNumber  []byte `json:"magic_number"`
		Manufacturer []byte `json:"manufacturer"`
		ProductCode  uint16 `json:"product_code"`
		SerialNumber uint32 `json:"serial_number"`
		Week         uint8  `json:"week"`
		Year         uint8  `json:"year"`
		Version      uint8  `json:"version"`
		Revision     uint8  `json:"revision"`
	}
)

var (
	MagicNumberBytes = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}
)

package timeshare

// ShareStatus tracks one of the four fractional interests in a property.
type ShareStatus string

const (
	ShareDisponible ShareStatus = "disponible"
	ShareReservada  ShareStatus = "reservada"
	ShareVendida    ShareStatus = "vendida"
)

func (s ShareStatus) String() string {
	return string(s)
}

// AcquisitionKind is how an owner takes a share: a reservation holds it, a
// purchase closes it.
type AcquisitionKind string

const (
	AcquireReservar AcquisitionKind = "reservar"
	AcquireComprar  AcquisitionKind = "comprar"
)

func (k AcquisitionKind) shareStatus() ShareStatus {
	if k == AcquireComprar {
		return ShareVendida
	}
	return ShareReservada
}

func (k AcquisitionKind) IsValid() bool {
	return k == AcquireReservar || k == AcquireComprar
}

const ShareCount = 4

// SharePriceFraction is each share's slice of the property price.
const SharePriceFraction = 0.25

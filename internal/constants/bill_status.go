package constants

// BillStatus is the lifecycle state of a committed bill. Cancelled is
// terminal: no transition ever leaves it.
type BillStatus int

const (
	BillStatusUnknown BillStatus = iota
	BillStatusPaid
	BillStatusCancelled
)

func (s BillStatus) String() string {
	switch s {
	case BillStatusPaid:
		return "Paid"
	case BillStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

var billStatusMap = map[string]BillStatus{
	"Paid":      BillStatusPaid,
	"Cancelled": BillStatusCancelled,
}

func ParseBillStatus(s string) BillStatus {
	if status, ok := billStatusMap[s]; ok {
		return status
	}
	return BillStatusUnknown
}

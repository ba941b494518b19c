package fields

const (
	FieldObjectId  = "_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldName      = "name"
	FieldStatus    = "status"

	FieldItemCategory     = "category"
	FieldItemPrice        = "price"
	FieldItemPrepared     = "prepared_quantity"
	FieldItemSold         = "sold_quantity"
	FieldItemAvailable    = "available"
	FieldItemPreparedDate = "prepared_date"

	FieldBillNumber      = "bill_number"
	FieldBillCancelledAt = "cancelled_at"

	FieldCounterValue = "current_value"

	FieldActivityAction = "action"
)

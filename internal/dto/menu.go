package dto

import "github.com/Mukunt07/subramaniya-mess/internal/constants"

// --- AddItem DTOs ---

func NewAddItemRequest(name string, category constants.Category, price float64, preparedQuantity int64) *AddItemRequest {
	return &AddItemRequest{
		name:             name,
		category:         category,
		price:            price,
		preparedQuantity: preparedQuantity,
	}
}

type AddItemRequest struct {
	name             string
	category         constants.Category
	price            float64
	preparedQuantity int64
}

func (r *AddItemRequest) GetName() string {
	return r.name
}

func (r *AddItemRequest) GetCategory() constants.Category {
	return r.category
}

func (r *AddItemRequest) GetPrice() float64 {
	return r.price
}

func (r *AddItemRequest) GetPreparedQuantity() int64 {
	return r.preparedQuantity
}

// --- UpdateItem DTOs ---

func NewUpdateItemRequest(id int64, name string, category constants.Category, price float64, preparedQuantity int64, available bool) *UpdateItemRequest {
	return &UpdateItemRequest{
		id:               id,
		name:             name,
		category:         category,
		price:            price,
		preparedQuantity: preparedQuantity,
		available:        available,
	}
}

type UpdateItemRequest struct {
	id               int64
	name             string
	category         constants.Category
	price            float64
	preparedQuantity int64
	available        bool
}

func (r *UpdateItemRequest) GetID() int64 {
	return r.id
}

func (r *UpdateItemRequest) GetName() string {
	return r.name
}

func (r *UpdateItemRequest) GetCategory() constants.Category {
	return r.category
}

func (r *UpdateItemRequest) GetPrice() float64 {
	return r.price
}

func (r *UpdateItemRequest) GetPreparedQuantity() int64 {
	return r.preparedQuantity
}

func (r *UpdateItemRequest) GetAvailable() bool {
	return r.available
}

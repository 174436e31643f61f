package delivery_eta

import (
	"time"

	"marketplace/internal/entities"
)

type DeliveryTimeFactory struct{}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{}
}

// EstimateDelivery считает ожидаемое время доставки от момента принятия заказа.
func (d *DeliveryTimeFactory) EstimateDelivery(storeType entities.StoreType, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch storeType {
	case entities.StorePharmacy:
		resultTime = resultTime.Add(time.Minute * 30)
	case entities.StoreRestaurant:
		resultTime = resultTime.Add(time.Minute * 45)
	case entities.StoreSupermarket:
		resultTime = resultTime.Add(time.Minute * 60)
	default:
		resultTime = resultTime.Add(time.Minute * 45)
	}

	return resultTime
}

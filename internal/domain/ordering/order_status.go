package ordering

import (
	"golang.org/x/text/language"
)

// OrderStatus represents the delivery lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInDelivery OrderStatus = "in_delivery"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatusLabels = map[OrderStatus]map[language.Tag]string{
	OrderStatusPending: {
		language.English: "Pending",
		language.Russian: "Ожидает обработки",
	},
	OrderStatusInDelivery: {
		language.English: "In delivery",
		language.Russian: "В процессе доставки",
	},
	OrderStatusDelivered: {
		language.English: "Delivered",
		language.Russian: "Доставлен",
	},
	OrderStatusCancelled: {
		language.English: "Cancelled",
		language.Russian: "Отменен",
	},
}

// IsValid returns true if the status is a known discriminant
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true once the order can no longer change state
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Label returns the display label for the status in the closest supported locale
func (s OrderStatus) Label(locale language.Tag) string {
	_, idx, _ := statusMatcher.Match(locale)
	if labels, ok := orderStatusLabels[s]; ok {
		if label, ok := labels[statusLocales[idx]]; ok {
			return label
		}
		return labels[language.English]
	}
	return string(s)
}

// CourierStatus represents the availability of a courier
type CourierStatus string

const (
	CourierStatusAvailable CourierStatus = "available"
	CourierStatusBusy      CourierStatus = "busy"
)

var courierStatusLabels = map[CourierStatus]map[language.Tag]string{
	CourierStatusAvailable: {
		language.English: "Available",
		language.Russian: "Доступен",
	},
	CourierStatusBusy: {
		language.English: "Busy",
		language.Russian: "Занят",
	},
}

// IsValid returns true if the status is a known discriminant
func (s CourierStatus) IsValid() bool {
	return s == CourierStatusAvailable || s == CourierStatusBusy
}

// Label returns the display label for the status in the closest supported locale
func (s CourierStatus) Label(locale language.Tag) string {
	_, idx, _ := statusMatcher.Match(locale)
	if labels, ok := courierStatusLabels[s]; ok {
		if label, ok := labels[statusLocales[idx]]; ok {
			return label
		}
		return labels[language.English]
	}
	return string(s)
}

var statusLocales = []language.Tag{language.English, language.Russian}

var statusMatcher = language.NewMatcher(statusLocales)

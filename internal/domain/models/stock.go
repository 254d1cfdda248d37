package models

// StockItem is a named article held in inventory. Names are unique ignoring
// case; the item alerts once Quantity drops to AlertThreshold or below.
type StockItem struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	AlertThreshold int    `json:"alert_threshold"`
}

package models

// Order is one record of the static dataset. Field names follow the export
// format the dashboard is fed with.
type Order struct {
	ID              Text     `json:"Order_ID"`
	CustomerName    Text     `json:"Customer_Name"`
	CustomerPhone   Text     `json:"Customer_Phone"`
	CustomerAddress Text     `json:"Customer_Address,omitempty"`
	Type            Text     `json:"Order_Type"`
	Status          Text     `json:"Order_Status"`
	DeliveryPerson  Text     `json:"Delivery_Person,omitempty"`
	Items           ItemList `json:"Items"`
}

type Item struct {
	Name       Text   `json:"Item_Name"`
	Quantity   Number `json:"Quantity"`
	ItemPrice  Number `json:"Item_Price"`
	TotalPrice Number `json:"Total_Price"`
	ImageURL   Text   `json:"Image_URL,omitempty"`
}

// Summary is everything the metric cards and the two charts read.
type Summary struct {
	TotalOrders            int            `json:"totalOrders"`
	Delivered              int            `json:"delivered"`
	Pending                int            `json:"pending"`
	InTransit              int            `json:"inTransit"`
	Revenue                float64        `json:"revenue"`
	RevenueText            string         `json:"revenueText"`
	TopItems               []TopItem      `json:"topItems"`
	OrdersByDeliveryPerson map[string]int `json:"ordersByDeliveryPerson"`
	StatusPie              []PieSlice     `json:"statusPie"`
}

type TopItem struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FilterState is owned by the caller (one per UI session) and passed in on
// every filter call.
type FilterState struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	Search string `json:"search"`
}

type FilterOptions struct {
	Statuses []string `json:"statuses"`
	Types    []string `json:"types"`
}

// Row is one line of the orders table.
type Row struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	StatusBucket  string  `json:"statusBucket,omitempty"`
	Courier       string  `json:"deliveryPerson"`
	ItemCount     int     `json:"itemCount"`
	Revenue       float64 `json:"revenue"`
	RevenueText   string  `json:"revenueText"`
}

type OrderDetail struct {
	Order       Order        `json:"order"`
	Lines       []LineDetail `json:"lines"`
	Revenue     float64      `json:"revenue"`
	RevenueText string       `json:"revenueText"`
}

type LineDetail struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

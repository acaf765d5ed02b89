// Package tracking derives shipment tracking views for the order
// detail page. There is no courier integration; the tracking number and
// checkpoint timeline are generated from the order itself, the way the
// storefront's demo data does it.
package tracking

import (
	"strings"
	"time"

	"github.com/nouvalryhn/reboxed-web/internal/order"
)

type Checkpoint struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
}

// Number derives the courier tracking number from the order id.
func Number(orderID string) string {
	return "JNE" + strings.TrimPrefix(orderID, "ORD-") + "ID"
}

// checkpoint templates, oldest first, with offsets from order creation
var stages = []struct {
	status    string
	location  string
	offset    time.Duration
	minStatus order.Status
}{
	{"Pembayaran berhasil", "Jakarta", 0, order.StatusPaid},
	{"Pesanan sedang dikemas", "Gudang penjual", 2 * time.Hour, order.StatusPaid},
	{"Paket dikirim dari penjual", "Drop point asal", 8 * time.Hour, order.StatusShipped},
	{"Paket dalam perjalanan ke hub tujuan", "Hub transit", 20 * time.Hour, order.StatusShipped},
	{"Paket tiba di hub tujuan", "Hub kota tujuan", 30 * time.Hour, order.StatusShipped},
	{"Paket sedang dalam perjalanan", "Kurir lokal", 40 * time.Hour, order.StatusDelivered},
	{"Pesanan telah diterima", "Alamat penerima", 48 * time.Hour, order.StatusDelivered},
}

// statusRank orders statuses along the fulfillment path. Cancelled and
// pending orders show no courier progress.
func statusRank(s order.Status) int {
	switch s {
	case order.StatusPaid:
		return 1
	case order.StatusShipped:
		return 2
	case order.StatusDelivered:
		return 3
	}
	return 0
}

// Timeline returns the checkpoints reached so far, newest first.
func Timeline(o order.Order) []Checkpoint {
	rank := statusRank(o.Status)
	if rank == 0 {
		return nil
	}

	var out []Checkpoint
	for _, st := range stages {
		if statusRank(st.minStatus) > rank {
			break
		}
		out = append([]Checkpoint{{
			Status:    st.status,
			Location:  st.location,
			Timestamp: o.CreatedAt.Add(st.offset),
		}}, out...)
	}
	return out
}

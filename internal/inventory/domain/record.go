package domain

import (
	"time"
)

// Kind names one of the six record categories. It is also the path segment
// used by the HTTP routes (/{kind}s, /add_{kind}, ...).
type Kind string

const (
	KindCustomer Kind = "customer"
	KindEmployee Kind = "employee"
	KindStock    Kind = "stock"
	KindSupplier Kind = "supplier"
	KindOrder    Kind = "order"
	KindProduct  Kind = "product"
)

// Kinds lists every kind in the order the overview presents them.
var Kinds = []Kind{KindCustomer, KindEmployee, KindStock, KindSupplier, KindOrder, KindProduct}

// Plural is the collection name, used for list routes and overview keys.
func (k Kind) Plural() string {
	return string(k) + "s"
}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s || k.Plural() == s {
			return k, true
		}
	}
	return "", false
}

// Model holds the columns shared by every table. ID is assigned by the store
// and never changes; the timestamps are maintained by the ORM.
type Model struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Form is the submitted field set for a record of type T. Apply overwrites
// every form-backed field of rec; now supplies server-side defaults.
//
// Required fields are pointers, so "required" means the key was submitted:
// an empty string is a valid value. An empty numeric value is rejected by
// the handler, since the binder would read it as zero.
type Form[T any] interface {
	Apply(rec *T, now time.Time)
}

// Models returns a zero value of every persisted type, for schema migration.
func Models() []any {
	return []any{&Customer{}, &Employee{}, &Stock{}, &Supplier{}, &Order{}, &Product{}}
}

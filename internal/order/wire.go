//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/internal/order/delivery/http"
	"github.com/bookhaven/backoffice/internal/order/usecase/command"
	staffdomain "github.com/bookhaven/backoffice/internal/staff/domain"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies.
// The product and staff repositories are supplied by their own domains.
func InitializeHTTPHandler(
	db *gorm.DB,
	products catalogdomain.ProductRepository,
	staff staffdomain.StaffRepository,
	publisher command.SalePublisher,
) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewOrderHandler,
	)
	return nil, nil
}

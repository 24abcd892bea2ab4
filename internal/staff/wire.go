//go:build wireinject
// +build wireinject

package staff

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/staff/delivery/http"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStaffRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.StaffHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewStaffHandler,
	)
	return nil, nil
}

package moderationservice

import (
	"log/slog"

	productmemory "showcase/contexts/catalog-experience/product-service/adapters/memory"
	identitymemory "showcase/contexts/identity-access/identity-service/adapters/memory"
	httpadapter "showcase/contexts/moderation-safety/moderation-service/adapters/http"
	"showcase/contexts/moderation-safety/moderation-service/adapters/memory"
	"showcase/contexts/moderation-safety/moderation-service/application"
	"showcase/contexts/moderation-safety/moderation-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Products  ports.ProductRepository
	Directory ports.DirectoryRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Products:  deps.Products,
		Directory: deps.Directory,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule moderates the same in-memory stores the identity and
// product modules serve, so administrative changes surface through the
// public surfaces immediately.
func NewInMemoryModule(products *productmemory.Store, users *identitymemory.Store, logger *slog.Logger) Module {
	store := memory.NewStore(products, users)
	module := NewModule(Dependencies{
		Products:  store,
		Directory: store,
		Clock:     products,
		Logger:    logger,
	})
	module.Store = store
	return module
}

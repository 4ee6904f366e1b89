package identityservice

import (
	"log/slog"
	"strings"
	"time"

	bcryptadapter "showcase/contexts/identity-access/identity-service/adapters/bcrypt"
	httpadapter "showcase/contexts/identity-access/identity-service/adapters/http"
	"showcase/contexts/identity-access/identity-service/adapters/memory"
	"showcase/contexts/identity-access/identity-service/application"
	"showcase/contexts/identity-access/identity-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Sessions    ports.SessionStore
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	AdminEmails []string
	SessionTTL  time.Duration
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:        deps.Repository,
		Sessions:    deps.Sessions,
		Hasher:      deps.Hasher,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		AdminEmails: adminEmailSet(deps.AdminEmails),
		SessionTTL:  deps.SessionTTL,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(adminEmails []string, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Sessions:   store,
		// Minimum bcrypt cost keeps in-memory runs fast.
		Hasher:      bcryptadapter.NewHasher(4),
		Clock:       store,
		IDGenerator: store,
		AdminEmails: adminEmails,
		SessionTTL:  24 * time.Hour,
		Logger:      logger,
	})
	module.Store = store
	return module
}

func adminEmailSet(emails []string) map[string]struct{} {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			set[email] = struct{}{}
		}
	}
	return set
}

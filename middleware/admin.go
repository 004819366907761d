package middleware

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/kurs-wjo/wjo_api/shared"
)

// AdminMiddleware gates the content management surface behind a single
// operator key. The key itself never lives in config, only its bcrypt hash.
type AdminMiddleware struct {
	context.DefaultService

	adminKeyHash string
}

const ADMIN_MIDDLEWARE_SVC = "admin"

const adminKeyHeader = "X-Admin-Key"

func (svc AdminMiddleware) Id() string {
	return ADMIN_MIDDLEWARE_SVC
}

func (svc *AdminMiddleware) Configure(ctx *context.Context) error {
	svc.adminKeyHash = os.Getenv("ADMIN_KEY_HASH")
	if svc.adminKeyHash == "" {
		log.Warn("ADMIN_KEY_HASH not set, admin endpoints will reject all requests")
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminMiddleware) Start() error {
	return nil
}

func (svc *AdminMiddleware) RequiredAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(adminKeyHeader)
		if key == "" || svc.adminKeyHash == "" {
			return shared.ResponseForbidden(c)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(svc.adminKeyHash), []byte(key)); err != nil {
			log.WithField("ip", c.IP()).Warn("rejected admin key")
			return shared.ResponseForbidden(c)
		}

		return c.Next()
	}
}

package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"itm/internal/infrastructure/auth"
	"itm/internal/infrastructure/config"
	"itm/internal/infrastructure/permission"
	"itm/internal/infrastructure/ratelimit"
	"itm/internal/interfaces/http/middleware"
	"itm/internal/shared/logger"
	"itm/internal/shared/utils"
)

// Container holds all infrastructure components, repositories, use cases
// and handlers, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimitMiddleware

	// Auth infrastructure
	jwtSvc   *auth.JWTService
	hasher   *auth.BcryptPasswordHasher
	enforcer *permission.Enforcer
}

// NewContainer wires the application. redisClient may be nil, in which case
// rate limiting is kept in process memory.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if err := utils.RegisterBindingValidators(); err != nil {
		return fmt.Errorf("failed to register binding validators: %w", err)
	}

	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitPolicies(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to initialize permission policies: %w", err)
	}
	c.enforcer = enforcer
	return nil
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	limitCfg := ratelimit.RateLimitConfig{
		Limit:  c.cfg.RateLimit.AuthRequests,
		Window: time.Duration(c.cfg.RateLimit.AuthWindowSeconds) * time.Second,
	}
	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis, limitCfg)
		c.log.Infow("rate limiting backed by redis", "limit", limitCfg.Limit, "window", limitCfg.Window)
	} else {
		limiter = ratelimit.NewMemoryRateLimiter(limitCfg)
		c.log.Infow("rate limiting kept in memory", "limit", limitCfg.Limit, "window", limitCfg.Window)
	}
	c.rateLimiter = middleware.NewRateLimitMiddleware(limiter, c.log)
}

// Engine returns the gin engine routes are registered on.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

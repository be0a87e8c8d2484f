// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-account/internal/accountdelivery"
	"github.com/go-petr/pet-account/internal/accountrepo"
	"github.com/go-petr/pet-account/internal/accountservice"
	"github.com/go-petr/pet-account/internal/bindingvalidator"
	"github.com/go-petr/pet-account/internal/middleware"
	"github.com/go-petr/pet-account/internal/transferdelivery"
	"github.com/go-petr/pet-account/internal/transferservice"
	"github.com/go-petr/pet-account/pkg/configpkg"
)

var errUnsupportedValidator = errors.New("binding validator engine is not *validator.Validate")

// Server holds handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoMem()
	accountService := accountservice.New(accountRepo)
	transferService := transferservice.New(accountRepo)

	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errUnsupportedValidator
	}

	if err := bindingvalidator.Register(v); err != nil {
		return nil, fmt.Errorf("cannot register binding validators: %w", err)
	}

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.DELETE("/accounts/:id", accountHandler.Delete)
	engine.POST("/accounts/:id/deposit", accountHandler.Deposit)
	engine.POST("/accounts/:id/withdraw", accountHandler.Withdraw)

	engine.POST("/transfers", transferHandler.Create)

	engine.POST("/validations", accountHandler.Validate)

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}

package handlers

import (
	"github.com/arohezay/backend/internal/advisor"
	"github.com/arohezay/backend/internal/config"
	"github.com/arohezay/backend/internal/store/rabbitmq"
)

type Handler struct {
	Cfg    config.Config
	Svc    *advisor.Service
	Jobs   *advisor.Jobs
	Rabbit *rabbitmq.Publisher // nil when RABBIT_URL is unset
}

func NewHandler(cfg config.Config, svc *advisor.Service, jobs *advisor.Jobs, rabbit *rabbitmq.Publisher) *Handler {
	return &Handler{Cfg: cfg, Svc: svc, Jobs: jobs, Rabbit: rabbit}
}

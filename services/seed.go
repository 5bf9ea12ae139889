package services

import (
	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/retroden/arcade_api/seed/seeders"
)

// SeedService exposes the seeders to the admin reseed endpoint so a deployment
// can be restored to the demo dataset without shelling into the box.
type SeedService struct {
	context.DefaultService

	sqlSvc *SqliteService
}

const SEED_SVC = "seed_svc"

func (svc SeedService) Id() string {
	return SEED_SVC
}

func (svc *SeedService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *SeedService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	return nil
}

// Reseed wipes sessions, users and games and reloads the demo dataset.
func (svc *SeedService) Reseed() error {
	mainSeeder := seeders.NewMainSeeder(svc.sqlSvc.Db())

	if err := mainSeeder.Reset(); err != nil {
		log.WithError(err).Error("Database reseed failed")
		return svc.sqlSvc.HandleError(err)
	}

	log.Info("Database reseeded with demo dataset")
	return nil
}

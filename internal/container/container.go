package container

import (
	app "gradation-bot/internal/application"
	"gradation-bot/internal/domain/port"
)

// Adapters — внешние зависимости сервисов.
type Adapters struct {
	Users    port.UserRepository
	Detector port.RegionDetector
	Renderer port.ChartRenderer
	Parser   port.SieveTableParser
	Exporter port.ReportExporter
}

type Container struct {
	UserService   *app.UserService
	ImageService  *app.ImageService
	SieveService  *app.SieveService
	ReportService *app.ReportService
}

func New(adapters Adapters, histogramBins int) *Container {
	userService := app.NewUserService(adapters.Users)
	analyzer := app.NewAnalyzer(adapters.Detector, histogramBins)

	return &Container{
		UserService:   userService,
		ImageService:  app.NewImageService(userService, analyzer, adapters.Renderer),
		SieveService:  app.NewSieveService(userService, analyzer, adapters.Parser, adapters.Renderer),
		ReportService: app.NewReportService(userService, adapters.Exporter),
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/dal"
	"cruise-booking-api/internal/dao"
	"cruise-booking-api/internal/gateway"
	"cruise-booking-api/internal/handler"
	"cruise-booking-api/internal/idgen"
	"cruise-booking-api/internal/logger"
	"cruise-booking-api/internal/middleware"
	"cruise-booking-api/internal/mq"
	"cruise-booking-api/internal/service"
	"cruise-booking-api/internal/system"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	// idgen
	idgen.Init(1)

	logger.InitAudit()
	system.Config()

	// start consumers
	go mq.StartConsumers()

	// wire services
	gw := gateway.NewClient(config.C.Gateway, gateway.NewRedisTokenCache())
	pub := mq.NewPublisher()
	paymentSvc := service.NewPaymentService(dao.NewPaymentDao(), gw, pub, service.NewRedisGuard())
	jobSvc := service.NewJobService(dao.NewJobDao(), pub)
	contactSvc := service.NewContactService(dao.NewContactDao())
	dashSvc := service.NewDashboardService(dao.NewPaymentDao(), dao.NewJobDao(), dao.NewContactDao())

	paymentH := handler.NewPaymentHandler(paymentSvc)
	bookingH := handler.NewBookingHandler(paymentSvc)
	jobH := handler.NewJobHandler(jobSvc)
	contactH := handler.NewContactHandler(contactSvc)
	dashH := handler.NewDashboardHandler(dashSvc)
	healthH := handler.NewHealthHandler(gw)

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover(), middleware.RequestLogger())

	r.GET("/healthz", healthH.Healthz)

	// payment surface carries per-request trace + audit
	pay := r.Group("/", middleware.TraceAudit())
	{
		pay.GET("/api/initiate-payment", paymentH.InitiatePayment)
		pay.POST("/api/initiate-payment", paymentH.InitiatePayment)
		pay.GET("/payment/callback", paymentH.Callback)
		pay.POST("/api/v1/payments/ipn", middleware.IPNSourceCheck(), paymentH.IPN)
		pay.POST("/api/v1/bookings/cruise", bookingH.CreateCruiseBooking)
		pay.POST("/api/v1/orders/meal", bookingH.CreateMealOrder)
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/payments/:ref", paymentH.Status)

		v1.GET("/jobs", jobH.List)
		v1.GET("/jobs/:id", jobH.Get)
		v1.POST("/applications", jobH.Apply)
		v1.POST("/saved-jobs", jobH.SaveJob)
		v1.GET("/saved-jobs", jobH.ListSavedJobs)
		v1.DELETE("/saved-jobs/:id", jobH.UnsaveJob)

		v1.POST("/contacts", contactH.Create)
	}

	admin := r.Group("/api/v1/admin", middleware.AdminAuth())
	{
		admin.GET("/dashboard", dashH.Overview)

		admin.GET("/jobs", jobH.AdminList)
		admin.POST("/jobs", jobH.Create)
		admin.PUT("/jobs/:id", jobH.Update)
		admin.DELETE("/jobs/:id", jobH.Delete)

		admin.GET("/applications", jobH.ListApplications)
		admin.PATCH("/applications/:id/status", jobH.UpdateApplicationStatus)

		admin.GET("/contacts", contactH.List)
		admin.PATCH("/contacts/:id", contactH.UpdateStatus)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

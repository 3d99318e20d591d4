package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	rt := services.NewRealtimeHub()
	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, ps)

	intake := services.NewIntakeService(config.DB)

	r := routes.SetupRouter(rt, ps, intake)
	r.Run(":8080")
}

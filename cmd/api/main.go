package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"c2p-system/application"
	"c2p-system/presenters"
	"c2p-system/utils/configs"
	"c2p-system/utils/gpooling"
	logger2 "c2p-system/utils/logger"

	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger(config.ENV)

	pool_go_routine, _ := gpooling.NewPooling(config.MaxPoolSize)

	app := application.NewVerificationApplication(config, lg, pool_go_routine)

	presenter := presenters.NewHTTPPresenter(app, lg)

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: presenter.Router(),
	}

	sig := make(chan os.Signal, 1)

	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	pool_go_routine.Submit(func() {
		<-sig
		lg.Warn("shutting down http server...")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			lg.With(zap.Error(err)).Error("shutdown error")
		}
		pool_go_routine.Release()
	})

	lg.With(zap.String("port", config.Port)).
		With(zap.String("environment", config.Mercantil.Environment)).
		Info("starting http server")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}

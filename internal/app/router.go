package app

import (
	"github.com/go-chi/chi/v5"

	"github.com/bennettdavid04/simply-invest/internal/handler/lesson"
	"github.com/bennettdavid04/simply-invest/internal/handler/middleware"
	"github.com/bennettdavid04/simply-invest/internal/handler/portfolio"
	"github.com/bennettdavid04/simply-invest/internal/handler/stock"
	"github.com/bennettdavid04/simply-invest/internal/handler/user"
	"github.com/bennettdavid04/simply-invest/internal/repository"
	"github.com/bennettdavid04/simply-invest/internal/service"
)

func (app App) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithAuth(app.Config))

	users := repository.NewUsers(app.Store)
	prices := repository.NewPrices(app.Store)

	userService := service.NewUserService(users, app.Config)
	userHandler := userhandler.New(userService)

	priceService := service.NewPriceService(prices)
	stockHandler := stockhandler.New(priceService)

	portfolioService := service.NewPortfolioService(users, priceService)
	portfolioHandler := portfoliohandler.New(portfolioService)

	lessonService := service.NewLessonService()
	lessonHandler := lessonhandler.New(lessonService)

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/logout", userHandler.Logout)

			r.Get("/balance", portfolioHandler.Balance)
			r.Get("/portfolio", portfolioHandler.Portfolio)
			r.Post("/portfolio/buy", portfolioHandler.Buy)
			r.Post("/portfolio/revalue", portfolioHandler.Revalue)
			r.Delete("/portfolio/{index}", portfolioHandler.Sell)
		})

		r.Get("/stocks", stockHandler.Stocks)
		r.Get("/stocks/{symbol}", stockHandler.Stock)

		r.Get("/lessons", lessonHandler.Lessons)
		r.Get("/lessons/{id}", lessonHandler.Lesson)
	})

	return r
}

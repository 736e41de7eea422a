package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "leetcode_proxy/docs" // 注册 swagger 文档
	"leetcode_proxy/metrics"
	"leetcode_proxy/services"
)

// Dependencies 路由依赖，由 main 显式构造后注入
type Dependencies struct {
	LeetCode services.LeetCodeService
	Registry services.UserRegistry
	Metrics  *metrics.Metrics
}

// NewRouter 创建带中间件的路由
func NewRouter(deps Dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	lc := NewLeetCodeHandler(deps.LeetCode)
	reg := NewRegistryHandler(deps.Registry)
	r.Route("/leetcode", func(r chi.Router) {
		r.Get("/profile", lc.GetProfile)
		r.Get("/stats", lc.GetStats)
		r.Get("/skills", lc.GetSkills)
		r.Get("/problems", lc.GetRecentProblems)
		r.Get("/ids", reg.ListIDs)
	})

	r.Post("/add-user", reg.AddUser)
	r.Get("/healthz", reg.Health)
}

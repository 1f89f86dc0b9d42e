package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sezikua/agrotyres-shop/internal/controller"
)

// Controllers 路由依赖的控制器集合
type Controllers struct {
	Product    *controller.ProductController
	SizeFilter *controller.SizeFilterController
	Trelleborg *controller.TrelleborgController
}

// InitRoutes 注册全部路由
func InitRoutes(r *gin.Engine, ctls *Controllers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", ctls.Product.GetProducts)
			products.GET("/filtered", ctls.Product.GetFilteredProducts)
			products.GET("/segment/:segment", ctls.Product.GetProductsBySegment)
			products.GET("/size/:size", ctls.Product.GetProductsBySize)
			products.GET("/similar/:size", ctls.Product.GetSimilarProducts)
			products.GET("/slug/:slug", ctls.Product.GetProductBySlug)
			products.GET("/:id", ctls.Product.GetProduct)
		}

		api.GET("/size-filter", ctls.SizeFilter.GetSizeFilter)

		trelleborg := api.Group("/trelleborg")
		{
			trelleborg.GET("/size", ctls.Trelleborg.GetSizeTable)
			trelleborg.GET("/ccalc", ctls.Trelleborg.GetCCalc)
			trelleborg.GET("/ccalc/recommend", ctls.Trelleborg.RecommendPressure)
		}
	}
}

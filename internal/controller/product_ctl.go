package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/api/dto"
	"github.com/sezikua/agrotyres-shop/internal/service"
)

// 对外统一的本地化错误文案；内部错误细节只进日志，不出边界
const (
	msgFetchProducts   = "Помилка отримання товарів з сервера"
	msgFetchFiltered   = "Помилка отримання відфільтрованих товарів"
	msgFetchBySegment  = "Помилка отримання товарів за сегментом"
	msgFetchBySize     = "Помилка отримання товарів за розміром"
	msgFetchSimilar    = "Помилка отримання схожих товарів"
	msgFetchProduct    = "Помилка отримання товару з сервера"
	msgProductNotFound = "Товар не знайдено"
	msgBadProductID    = "Невірний ідентифікатор товару"
)

// ProductController 商品查询接口
type ProductController struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

// NewProductController 创建商品控制器
func NewProductController(catalog *service.CatalogService, log *zap.Logger) *ProductController {
	return &ProductController{catalog: catalog, log: log}
}

// ==================== 列表查询 ====================

// GetProducts 商品列表（宽搜索：名称/型号/规格/SKU 四字段 OR）
// @Summary 按过滤条件获取商品列表
// @Tags Product
// @Param category query string false "单分类"
// @Param categories query string false "多分类，逗号分隔"
// @Param segments query string false "细分市场，逗号分隔"
// @Param search query string false "搜索词"
// @Param minPrice query string false "价格下限"
// @Param maxPrice query string false "价格上限"
// @Param warehouse query string false "库存状态，all 表示不过滤"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(30)
// @Success 200 {object} dto.ProductListResp
// @Router /api/products [get]
func (ctl *ProductController) GetProducts(c *gin.Context) {
	f := service.ProductFilter{
		Category:   c.Query("category"),
		Categories: splitList(c.Query("categories")),
		Segments:   splitList(c.Query("segments")),
		Search:     c.Query("search"),
		MinPrice:   c.Query("minPrice"),
		MaxPrice:   c.Query("maxPrice"),
		Warehouse:  c.Query("warehouse"),
	}
	page, limit := parsePaging(c)

	items, pg, err := ctl.catalog.QueryProducts(c.Request.Context(), f, page, limit)
	if err != nil {
		ctl.log.Error("商品列表查询失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgFetchProducts})
		return
	}
	c.JSON(http.StatusOK, dto.ProductListResp{Data: items, Pagination: pg})
}

// GetFilteredProducts 筛选面板入口；搜索语义收窄为仅商品名 _icontains
// @Summary 按筛选面板条件获取商品列表
// @Tags Product
// @Success 200 {object} dto.ProductListResp
// @Router /api/products/filtered [get]
func (ctl *ProductController) GetFilteredProducts(c *gin.Context) {
	f := service.ProductFilter{
		Categories:     splitList(c.Query("categories")),
		Segments:       splitList(c.Query("segments")),
		Search:         c.Query("search"),
		MinPrice:       c.Query("minPrice"),
		MaxPrice:       c.Query("maxPrice"),
		Warehouse:      c.Query("warehouse"),
		NameSearchOnly: true,
	}
	page, limit := parsePaging(c)

	items, pg, err := ctl.catalog.QueryProducts(c.Request.Context(), f, page, limit)
	if err != nil {
		ctl.log.Error("筛选查询失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgFetchFiltered})
		return
	}
	c.JSON(http.StatusOK, dto.ProductListResp{Data: items, Pagination: pg})
}

// GetProductsBySegment 按细分市场获取商品列表
// @Summary 按细分市场获取商品列表
// @Tags Product
// @Param segment path string true "细分市场"
// @Success 200 {object} dto.ProductListResp
// @Router /api/products/segment/{segment} [get]
func (ctl *ProductController) GetProductsBySegment(c *gin.Context) {
	segment := c.Param("segment")
	page, limit := parsePaging(c)

	items, pg, err := ctl.catalog.ProductsBySegment(c.Request.Context(), segment, page, limit)
	if err != nil {
		ctl.log.Error("细分市场查询失败", zap.String("segment", segment), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgFetchBySegment})
		return
	}
	c.JSON(http.StatusOK, dto.ProductListResp{Data: items, Pagination: pg})
}

// GetProductsBySize 按规格获取商品列表
// @Summary 按规格获取商品列表
// @Tags Product
// @Param size path string true "规格"
// @Success 200 {object} dto.ProductListResp
// @Router /api/products/size/{size} [get]
func (ctl *ProductController) GetProductsBySize(c *gin.Context) {
	size := c.Param("size")
	page, limit := parsePaging(c)

	items, pg, err := ctl.catalog.ProductsBySize(c.Request.Context(), size, page, limit)
	if err != nil {
		ctl.log.Error("规格查询失败", zap.String("size", size), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgFetchBySize})
		return
	}
	c.JSON(http.StatusOK, dto.ProductListResp{Data: items, Pagination: pg})
}

// GetSimilarProducts 同规格商品全集，不分页
// 当前商品自身由前端按 id 剔除
// @Summary 获取同规格商品
// @Tags Product
// @Param size path string true "规格"
// @Success 200 {object} dto.ProductsResp
// @Router /api/products/similar/{size} [get]
func (ctl *ProductController) GetSimilarProducts(c *gin.Context) {
	size := c.Param("size")

	items, err := ctl.catalog.SimilarBySize(c.Request.Context(), size)
	if err != nil {
		ctl.log.Error("同规格查询失败", zap.String("size", size), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgFetchSimilar})
		return
	}
	c.JSON(http.StatusOK, dto.ProductsResp{Data: items})
}

// ==================== 详情查询 ====================

// GetProduct 按主键获取商品详情
// @Summary 获取单个商品详情
// @Tags Product
// @Param id path int true "商品ID"
// @Success 200 {object} dto.ProductResp
// @Router /api/products/{id} [get]
func (ctl *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: msgBadProductID})
		return
	}

	product, err := ctl.catalog.ProductByID(c.Request.Context(), id)
	if err != nil {
		ctl.log.Error("商品详情查询失败", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgFetchProduct})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResp{Error: msgProductNotFound})
		return
	}
	c.JSON(http.StatusOK, dto.ProductResp{Data: product})
}

// GetProductBySlug 按 slug 获取商品详情
// @Summary 按 slug 获取单个商品详情
// @Tags Product
// @Param slug path string true "商品 slug"
// @Success 200 {object} dto.ProductResp
// @Router /api/products/slug/{slug} [get]
func (ctl *ProductController) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := ctl.catalog.ProductBySlug(c.Request.Context(), slug)
	if err != nil {
		ctl.log.Error("商品详情查询失败", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgFetchProduct})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResp{Error: msgProductNotFound})
		return
	}
	c.JSON(http.StatusOK, dto.ProductResp{Data: product})
}

// ==================== 参数解析 ====================

// parsePaging 解析分页参数，非法值回落默认
func parsePaging(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = service.DefaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if err != nil || limit < 1 {
		limit = service.DefaultLimit
	}
	return page, limit
}

// splitList 逗号列表 -> 去空白后的切片
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/api/dto"
	"github.com/sezikua/agrotyres-shop/internal/service"
)

const msgSizeFilter = "Помилка отримання даних фільтра розмірів"

// SizeFilterController 直径->规格索引接口
type SizeFilterController struct {
	svc *service.SizeFilterService
	log *zap.Logger
}

// NewSizeFilterController 创建尺寸筛选控制器
func NewSizeFilterController(svc *service.SizeFilterService, log *zap.Logger) *SizeFilterController {
	return &SizeFilterController{svc: svc, log: log}
}

// GetSizeFilter 获取直径到规格列表的映射
// 优先读离线生成的静态数据，缺失时回退到限量在线查询
// @Summary 获取尺寸筛选数据
// @Tags SizeFilter
// @Success 200 {object} dto.SizeFilterResp
// @Router /api/size-filter [get]
func (ctl *SizeFilterController) GetSizeFilter(c *gin.Context) {
	data, err := ctl.svc.Load(c.Request.Context())
	if err != nil {
		ctl.log.Error("尺寸筛选数据加载失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgSizeFilter})
		return
	}
	c.JSON(http.StatusOK, dto.SizeFilterResp{Data: data})
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/api/dto"
	"github.com/sezikua/agrotyres-shop/internal/service"
)

const (
	msgMissingSKU    = "Не вказано параметр sku"
	msgTableNotFound = "Таблицю не знайдено"
	msgTableLoad     = "Не вдалося завантажити таблицю"
	msgCCalcNotFound = "Калькулятор не знайдено"
	msgCCalcLoad     = "Не вдалося завантажити калькулятор"
)

// TrelleborgController 技术数据接口：规格表、压力计算器
type TrelleborgController struct {
	svc *service.TrelleborgService
	log *zap.Logger
}

// NewTrelleborgController 创建技术数据控制器
func NewTrelleborgController(svc *service.TrelleborgService, log *zap.Logger) *TrelleborgController {
	return &TrelleborgController{svc: svc, log: log}
}

// GetSizeTable 获取规范化后的规格表 HTML
// @Summary 按 SKU 获取规格表
// @Tags Trelleborg
// @Param sku query string true "商品 SKU"
// @Success 200 {object} dto.TableResp
// @Router /api/trelleborg/size [get]
func (ctl *TrelleborgController) GetSizeTable(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: msgMissingSKU})
		return
	}

	html, err := ctl.svc.LoadSizeTable(sku)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResp{Error: msgTableNotFound})
			return
		}
		ctl.log.Error("规格表加载失败", zap.String("sku", sku), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgTableLoad})
		return
	}
	c.JSON(http.StatusOK, dto.TableResp{HTML: html})
}

// GetCCalc 获取压力计算器数据表与元数据
// @Summary 按 SKU 获取压力计算器数据
// @Tags Trelleborg
// @Param sku query string true "商品 SKU"
// @Success 200 {object} dto.CCalcResp
// @Router /api/trelleborg/ccalc [get]
func (ctl *TrelleborgController) GetCCalc(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: msgMissingSKU})
		return
	}

	cc, err := ctl.svc.LoadCCalc(sku)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResp{Error: msgCCalcNotFound})
			return
		}
		ctl.log.Error("计算器数据加载失败", zap.String("sku", sku), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgCCalcLoad})
		return
	}
	c.JSON(http.StatusOK, dto.CCalcResp{CCList: cc.CCList, Meta: cc.Meta})
}

// RecommendPressure 按速度与载荷给出推荐气压
// 无匹配时 recommendation 为 null，由前端兜底展示
// @Summary 计算推荐气压
// @Tags Trelleborg
// @Param sku query string true "商品 SKU"
// @Param speed query string true "速度 km/h"
// @Param load query number true "目标载荷 kg"
// @Success 200 {object} dto.RecommendResp
// @Router /api/trelleborg/ccalc/recommend [get]
func (ctl *TrelleborgController) RecommendPressure(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: msgMissingSKU})
		return
	}
	speed := c.Query("speed")
	load := c.Query("load")

	cc, err := ctl.svc.LoadCCalc(sku)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResp{Error: msgCCalcNotFound})
			return
		}
		ctl.log.Error("计算器数据加载失败", zap.String("sku", sku), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: msgCCalcLoad})
		return
	}
	c.JSON(http.StatusOK, dto.RecommendResp{Recommendation: service.Recommend(cc.CCList, speed, load)})
}

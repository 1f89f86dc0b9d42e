package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/config"
	"github.com/sezikua/agrotyres-shop/internal/model"
	"github.com/sezikua/agrotyres-shop/internal/service"
	"github.com/sezikua/agrotyres-shop/pkg/directus"
	"github.com/sezikua/agrotyres-shop/pkg/logger"
)

// 离线批处理：拉取全量 size/diameter，构建直径->规格索引并写静态文件
// 默认单次执行；传 -schedule 后以 cron 定时驻留

const pageSize = 500

func main() {
	schedule := flag.String("schedule", "", "cron 表达式（含秒），为空则只执行一次")
	output := flag.String("output", "", "产物路径，默认取配置 SIZE_FILTER_PATH")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("配置加载失败: " + err.Error())
	}
	if err := logger.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
		panic("日志初始化失败: " + err.Error())
	}
	log := logger.L()
	defer log.Sync()

	path := cfg.SizeFilterPath
	if *output != "" {
		path = *output
	}
	client := directus.NewClient(cfg.DirectusURL, cfg.DirectusToken)

	run := func() {
		if err := buildIndex(context.Background(), client, path, log); err != nil {
			log.Error("索引构建失败", zap.Error(err))
		}
	}

	if *schedule == "" {
		run()
		return
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(*schedule, run); err != nil {
		log.Fatal("cron 表达式无效", zap.String("schedule", *schedule), zap.Error(err))
	}
	c.Start()
	log.Info("索引器已驻留", zap.String("schedule", *schedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	<-c.Stop().Done()
}

// buildIndex 分页拉取全量商品后构建索引并落盘
func buildIndex(ctx context.Context, client *directus.Client, path string, log *zap.Logger) error {
	start := time.Now()

	products, err := fetchAllPaged(ctx, client)
	if err != nil {
		return fmt.Errorf("拉取商品失败: %w", err)
	}

	m := service.BuildSizeFilterMap(products)
	data, err := marshalOrdered(m)
	if err != nil {
		return fmt.Errorf("序列化索引失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入索引文件失败: %w", err)
	}

	log.Info("索引构建完成",
		zap.Int("products", len(products)),
		zap.Int("diameters", len(m)),
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// fetchAllPaged 按固定页大小遍历整个商品集
// 索引器不是在线路径，用受控分页代替一次性全量拉取
func fetchAllPaged(ctx context.Context, client *directus.Client) ([]model.Product, error) {
	var all []model.Product
	for offset := 0; ; offset += pageSize {
		q := directus.NewQuery().Fields("size,diameter").Limit(pageSize).Offset(offset)
		page, err := client.FetchProducts(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

// marshalOrdered 按直径数值序输出键，保证产物字节级可复现
func marshalOrdered(m model.SizeFilterMap) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	keys = service.SortDiameters(keys)

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, k := range keys {
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m[k])
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

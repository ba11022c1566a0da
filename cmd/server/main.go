package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/line-echo-relay/internal/config"
	"github.com/iliyamo/line-echo-relay/internal/handler"
	"github.com/iliyamo/line-echo-relay/internal/line"
	"github.com/iliyamo/line-echo-relay/internal/middleware"
	"github.com/iliyamo/line-echo-relay/internal/model"
	"github.com/iliyamo/line-echo-relay/internal/queue"
	"github.com/iliyamo/line-echo-relay/internal/relay"
	"github.com/iliyamo/line-echo-relay/internal/router"
	queue_publisher "github.com/iliyamo/line-echo-relay/internal/service"
	"github.com/iliyamo/line-echo-relay/internal/status"
	"github.com/iliyamo/line-echo-relay/internal/view"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(glog.INFO)
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Renderer = view.NewRenderer()

	replier := line.NewMessagingReplier(line.MessagingConfig{
		AccessToken: cfg.ChannelAccessToken,
		Endpoint:    cfg.LineAPIEndpoint,
		Timeout:     cfg.LineHTTPTimeout,
	})
	var onMessage relay.EventHandler = relay.NewEcho(replier)

	audit := config.LoadAuditConfig()
	if audit.Enabled {
		onMessage = relay.WithAudit(onMessage, queue_publisher.NewReplyPublisher(audit.URL, audit.Queue))
		if audit.ConsumerEnabled {
			go queue.StartReplyConsumer(audit.URL, audit.Queue, audit.LogDir)
		}
		log.Printf("reply audit enabled (queue=%s)", audit.Queue)
	}

	cb := handler.NewCallbackHandler(cfg, relay.Table{
		model.EventKindMessage: onMessage,
	})
	st := handler.NewStatusHandler(status.NewClient(cfg.APIBaseURL, cfg.StatusHTTPTimeout))

	cacheCfg := config.LoadCacheConfig()
	var rdb *redis.Client
	if cacheCfg.Enabled {
		client, err := config.NewRedisClient(config.LoadRedisConfig())
		if err != nil {
			log.Printf("status cache disabled: %v", err)
		} else {
			rdb = client
			defer rdb.Close()
		}
	}

	router.RegisterRoutes(e, cb, st, middleware.NewRedisCache(cacheCfg, rdb))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

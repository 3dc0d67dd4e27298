package asynqserver

import (
	"github.com/chainsaw-registry/backend/internal/cache"
	"github.com/chainsaw-registry/backend/internal/config"
	"github.com/chainsaw-registry/backend/internal/queue/processor"
	"github.com/chainsaw-registry/backend/internal/queue/task"
	"github.com/chainsaw-registry/backend/internal/worker"

	"github.com/hibiken/asynq"
)

func New(cfg config.Cache, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		RedisOptions(cfg),
		asynq.Config{
			Concurrency: 10,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	var opts asynq.RedisConnOpt
	if cfg.Type == cache.RedisTypeCluster {
		opts = asynq.RedisClusterClientOpt{Addrs: cfg.RedisCluster.Addresses, Password: cfg.RedisCluster.Password}
	} else {
		opts = asynq.RedisClientOpt{Addr: cfg.Redis.Address, Password: cfg.Redis.Password}
	}
	return opts
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	emailProcessor := processor.NewSendEmailProcessor(workers)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.SendOTPEmailTaskName, emailProcessor.ProcessOTPEmail)
	mux.HandleFunc(task.SendConfirmationEmailTaskName, emailProcessor.ProcessConfirmationEmail)
	mux.HandleFunc(task.SendAcceptedEmailTaskName, emailProcessor.ProcessAcceptedEmail)
	mux.HandleFunc(task.SendInspectionPassedEmailTaskName, emailProcessor.ProcessInspectionPassedEmail)

	queues := map[string]int{
		task.SendEmailQueueName: 1,
	}
	return mux, queues
}

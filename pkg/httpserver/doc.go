// Package httpserver runs the formatd HTTP listener with environment driven
// timeouts, graceful shutdown on SIGINT and SIGTERM, and a health endpoint.
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	srv := httpserver.New(append(cfg.Options(), httpserver.WithLogger(log))...)
//	return srv.Run(ctx, router)
package httpserver

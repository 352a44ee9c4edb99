// ndep composes example ND/NDFC requests with the endpoint descriptor
// library and logs the resulting verb/path pairs. It performs no network
// I/O; the output is meant for inspection and for wiring into an HTTP
// client of your choosing.
package main

import (
	"github.com/banglin/go-nd-endpoints/endpoint"
	"github.com/banglin/go-nd-endpoints/endpoint/infra"
	"github.com/banglin/go-nd-endpoints/endpoint/onemanage"
	"github.com/banglin/go-nd-endpoints/internal/config"
	"github.com/banglin/go-nd-endpoints/internal/logger"
	"github.com/banglin/go-nd-endpoints/queryparams"
	"github.com/banglin/go-nd-endpoints/validation"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.Log.Mode); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if cfg.Demo.PermissiveMode {
		validation.SetDefault(validation.Permissive())
		logger.Info("Constraint enforcement disabled (permissive validation)")
	}

	simpleDemo(cfg)
	compositeDemo(cfg)
	infraDemo()
}

// simpleDemo composes a fabric config-deploy request for one switch.
func simpleDemo(cfg *config.Config) {
	ep := onemanage.NewFabricConfigDeploySwitch()
	if err := ep.FabricName.Set(cfg.Demo.FabricName); err != nil {
		logger.Fatal("Invalid fabric name", zap.Error(err))
	}
	if err := ep.SwitchSn.Set(cfg.Demo.SwitchSerial); err != nil {
		logger.Fatal("Invalid switch serial", zap.Error(err))
	}
	if err := ep.QueryParams.SetForceShowRun(endpoint.BoolStringTrue); err != nil {
		logger.Fatal("Invalid force_show_run", zap.Error(err))
	}

	logDescriptor("fabric config-deploy switch", ep)
}

// compositeDemo combines endpoint-specific parameters with Lucene-style
// filtering in a single query string.
func compositeDemo(cfg *config.Config) {
	deployParams := queryparams.NewFabricConfigDeploy()
	if err := deployParams.SetForceShowRun(endpoint.BoolStringTrue); err != nil {
		logger.Fatal("Invalid force_show_run", zap.Error(err))
	}

	lucene := queryparams.NewLucene()
	if err := lucene.SetFilter("name:Spine* AND role:spine"); err != nil {
		logger.Fatal("Invalid filter", zap.Error(err))
	}
	if err := lucene.SetMax(50); err != nil {
		logger.Fatal("Invalid max", zap.Error(err))
	}
	if err := lucene.SetSort("name:asc"); err != nil {
		logger.Fatal("Invalid sort", zap.Error(err))
	}

	composite := queryparams.NewComposite().Add(deployParams).Add(lucene)

	ep := onemanage.NewVrfsGet()
	if err := ep.FabricName.Set(cfg.Demo.FabricName); err != nil {
		logger.Fatal("Invalid fabric name", zap.Error(err))
	}
	path, err := ep.Path()
	if err != nil {
		logger.Fatal("Failed to compose path", zap.Error(err))
	}
	if qs := composite.ToQueryString(); qs != "" {
		path += "?" + qs
	}

	logger.Info("Composed request",
		zap.String("operation", "vrfs get with composite filter"),
		zap.String("verb", ep.Verb().String()),
		zap.String("path", path))
}

// infraDemo composes ND Infra AAA local-user requests.
func infraDemo() {
	all := infra.NewLocalUsersGet()
	logDescriptor("local users get", all)

	one := infra.NewLocalUsersGet()
	if err := one.LoginID.Set("admin"); err != nil {
		logger.Fatal("Invalid login ID", zap.Error(err))
	}
	logDescriptor("local user get", one)
}

func logDescriptor(operation string, d endpoint.Descriptor) {
	path, err := d.Path()
	if err != nil {
		logger.Fatal("Failed to compose path",
			zap.String("operation", operation), zap.Error(err))
	}
	logger.Info("Composed request",
		zap.String("operation", operation),
		zap.String("verb", d.Verb().String()),
		zap.String("path", path))
}

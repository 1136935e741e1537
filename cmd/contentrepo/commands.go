package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
	"github.com/jsamuelsen/go-contentrepo/internal/ports"
)

// bucketCommand manages the configured bucket.
type bucketCommand struct {
	*baseCommand
}

func (c *bucketCommand) Synopsis() string {
	return "Show, create, delete or list buckets"
}

func (c *bucketCommand) Help() string {
	return `Usage: contentrepo bucket [options] [info|create|delete|list|overview]

  Works with the configured bucket. "info" (the default) prints its metadata;
  "overview" prints metadata and server status fetched together.` + globalHelp
}

func (c *bucketCommand) Run(args []string) int {
	f := c.flagSet("bucket")
	if !c.parse(f, args) {
		return 1
	}

	action := "info"
	if f.NArg() > 0 {
		action = f.Arg(0)
	}

	return c.run(func(ctx context.Context, rt *runtime) error {
		switch action {
		case "info":
			return outputResult(c.baseCommand, rt.buckets.Metadata(ctx))
		case "create":
			return outputResult(c.baseCommand, rt.buckets.Create(ctx))
		case "list":
			return outputResult(c.baseCommand, rt.buckets.List(ctx))
		case "delete":
			if err := rt.buckets.Delete(ctx); err != nil {
				return err
			}

			c.UI.Info(fmt.Sprintf("deleted bucket %s", rt.cfg.Repository.Bucket))

			return nil
		case "overview":
			ov, err := rt.service.Overview(ctx)
			if err != nil {
				return err
			}

			return c.output(overviewValue(ov.Bucket, ov.Status))
		default:
			return fmt.Errorf("unknown bucket action %q", action)
		}
	})
}

// objectsCommand lists objects or collections.
type objectsCommand struct {
	*baseCommand

	flagOffset      int
	flagLimit       int
	flagDeleted     bool
	flagCollections bool
}

func (c *objectsCommand) Synopsis() string {
	return "List objects in the bucket"
}

func (c *objectsCommand) Help() string {
	return `Usage: contentrepo objects [options]

  Lists one page of objects, or collections with -collections.

Options:

  -offset=<n>     Index of the first entry (default 0)
  -limit=<n>      Page size; 0 leaves it to the server
  -deleted        Include deleted entries
  -collections    List collections instead of objects` + globalHelp
}

func (c *objectsCommand) Run(args []string) int {
	f := c.flagSet("objects")
	f.IntVar(&c.flagOffset, "offset", 0, "")
	f.IntVar(&c.flagLimit, "limit", 0, "")
	f.BoolVar(&c.flagDeleted, "deleted", false, "")
	f.BoolVar(&c.flagCollections, "collections", false, "")

	if !c.parse(f, args) {
		return 1
	}

	page := domain.Pagination{Offset: c.flagOffset, Limit: c.flagLimit, IncludeDeleted: c.flagDeleted}

	return c.run(func(ctx context.Context, rt *runtime) error {
		if c.flagCollections {
			return outputResult(c.baseCommand, rt.collections.List(ctx, page))
		}

		return outputResult(c.baseCommand, rt.objects.List(ctx, page))
	})
}

// objectCommand reads object metadata, content, versions and tags.
type objectCommand struct {
	*baseCommand

	flagVersion    int
	flagContent    bool
	flagVersions   bool
	flagTag        string
	flagSetTag     string
	flagCollection bool
}

func (c *objectCommand) Synopsis() string {
	return "Show object metadata, content or versions"
}

func (c *objectCommand) Help() string {
	return `Usage: contentrepo object [options] <key> [<key>...]

  Prints the metadata of each key. Several keys are fetched concurrently and
  the command fails if any lookup fails.

Options:

  -version=<n>     Select version n instead of the latest
  -content         Write the raw content of one object to stdout
  -versions        List the versions of one object
  -tag=<tag>       Show the version of one object carrying tag
  -set-tag=<tag>   Attach tag to the version selected with -version
  -collection      Treat the key as a collection` + globalHelp
}

func (c *objectCommand) Run(args []string) int {
	f := c.flagSet("object")
	f.IntVar(&c.flagVersion, "version", 0, "")
	f.BoolVar(&c.flagContent, "content", false, "")
	f.BoolVar(&c.flagVersions, "versions", false, "")
	f.StringVar(&c.flagTag, "tag", "", "")
	f.StringVar(&c.flagSetTag, "set-tag", "", "")
	f.BoolVar(&c.flagCollection, "collection", false, "")

	if !c.parse(f, args) {
		return 1
	}

	keys := f.Args()
	if len(keys) == 0 {
		c.UI.Error("at least one key is required")
		return cli.RunResultHelp
	}

	return c.run(func(ctx context.Context, rt *runtime) error {
		if len(keys) > 1 {
			return c.describe(ctx, rt, keys)
		}

		if c.flagCollection {
			return c.collection(ctx, rt.collections, keys[0])
		}

		return c.object(ctx, rt.objects, keys[0])
	})
}

func (c *objectCommand) object(ctx context.Context, objects ports.ObjectService, key string) error {
	switch {
	case c.flagContent:
		data, err := objects.Content(ctx, key, c.flagVersion)
		if err != nil {
			return err
		}

		c.UI.Output(string(data))

		return nil
	case c.flagSetTag != "":
		return outputResult(c.baseCommand, objects.Tag(ctx, key, c.flagSetTag, c.flagVersion))
	case c.flagTag != "":
		return outputResult(c.baseCommand, objects.ByTag(ctx, key, c.flagTag))
	case c.flagVersions:
		return outputResult(c.baseCommand, objects.Versions(ctx, key))
	case c.flagVersion != 0:
		return outputResult(c.baseCommand, objects.Version(ctx, key, c.flagVersion))
	default:
		return outputResult(c.baseCommand, objects.Metadata(ctx, key))
	}
}

func (c *objectCommand) collection(ctx context.Context, collections ports.CollectionService, key string) error {
	switch {
	case c.flagVersions:
		return outputResult(c.baseCommand, collections.Versions(ctx, key))
	case c.flagVersion != 0:
		return outputResult(c.baseCommand, collections.Version(ctx, key, c.flagVersion))
	default:
		return outputResult(c.baseCommand, collections.Get(ctx, key))
	}
}

func (c *objectCommand) describe(ctx context.Context, rt *runtime, keys []string) error {
	var firstErr error

	for _, d := range rt.service.Describe(ctx, keys) {
		if d.Err != nil {
			c.UI.Error(fmt.Sprintf("%s: %s", d.Key, errorMessage(d.Err)))

			if firstErr == nil {
				firstErr = d.Err
			}

			continue
		}

		if err := c.output(d.Metadata); err != nil {
			return err
		}
	}

	return firstErr
}

// publishCommand uploads a file as a new object version.
type publishCommand struct {
	*baseCommand

	flagKey         string
	flagContentType string
}

func (c *publishCommand) Synopsis() string {
	return "Upload a file as a new object version"
}

func (c *publishCommand) Help() string {
	return `Usage: contentrepo publish [options] <file>

  Uploads the file as a new version of its object, creating the object when
  it does not exist. The SHA-256 checksum is computed locally.

Options:

  -key=<key>     Object key (default: the file's base name)
  -type=<type>   Content type (default: derived from the extension)` + globalHelp
}

func (c *publishCommand) Run(args []string) int {
	f := c.flagSet("publish")
	f.StringVar(&c.flagKey, "key", "", "")
	f.StringVar(&c.flagContentType, "type", "", "")

	if !c.parse(f, args) {
		return 1
	}

	if f.NArg() != 1 {
		c.UI.Error("exactly one file is required")
		return cli.RunResultHelp
	}

	up, err := c.upload(f.Arg(0))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return c.run(func(ctx context.Context, rt *runtime) error {
		return outputResult(c.baseCommand, rt.service.Publish(ctx, up))
	})
}

func (c *publishCommand) upload(path string) (domain.Upload, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return domain.Upload{}, fmt.Errorf("reading %s: %w", path, err)
	}

	key := c.flagKey
	if key == "" {
		key = filepath.Base(path)
	}

	contentType := c.flagContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(path))
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	sum := sha256.Sum256(data)

	return domain.Upload{
		Key:         key,
		ContentType: contentType,
		Checksum:    hex.EncodeToString(sum[:]),
		Content:     data,
	}, nil
}

// statusCommand prints server status or configuration.
type statusCommand struct {
	*baseCommand

	flagConfig bool
}

func (c *statusCommand) Synopsis() string {
	return "Show repository server status"
}

func (c *statusCommand) Help() string {
	return `Usage: contentrepo status [options]

Options:

  -config   Print the server configuration instead` + globalHelp
}

func (c *statusCommand) Run(args []string) int {
	f := c.flagSet("status")
	f.BoolVar(&c.flagConfig, "config", false, "")

	if !c.parse(f, args) {
		return 1
	}

	return c.run(func(ctx context.Context, rt *runtime) error {
		if c.flagConfig {
			return outputResult(c.baseCommand, rt.status.Config(ctx))
		}

		return outputResult(c.baseCommand, rt.status.Status(ctx))
	})
}

// healthCommand runs the registered health checks.
type healthCommand struct {
	*baseCommand
}

func (c *healthCommand) Synopsis() string {
	return "Check that the repository is reachable"
}

func (c *healthCommand) Help() string {
	return `Usage: contentrepo health [options]

  Exits 0 when every health check passes.` + globalHelp
}

func (c *healthCommand) Run(args []string) int {
	f := c.flagSet("health")
	if !c.parse(f, args) {
		return 1
	}

	return c.run(func(ctx context.Context, rt *runtime) error {
		result := rt.health.CheckAll(ctx)

		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding health result: %w", err)
		}

		c.UI.Output(indentJSON(data))

		if result.Status != ports.HealthStatusHealthy {
			return fmt.Errorf("repository is %s", result.Status)
		}

		return nil
	})
}

// versionCommand prints build information.
type versionCommand struct {
	UI cli.Ui
}

func (c *versionCommand) Synopsis() string {
	return "Print the client version"
}

func (c *versionCommand) Help() string {
	return "Usage: contentrepo version"
}

func (c *versionCommand) Run(_ []string) int {
	c.UI.Output(fmt.Sprintf("contentrepo %s (commit %s, built %s)", Version, Commit, BuildTime))
	return 0
}

// outputResult prints a successful result or passes the error through.
func outputResult(c *baseCommand, v jsonvalue.Value, err error) error {
	if err != nil {
		return err
	}

	return c.output(v)
}

func overviewValue(bucket, status jsonvalue.Value) jsonvalue.Value {
	v, err := jsonvalue.Normalize(&jsonvalue.Object{Members: []jsonvalue.Member{
		{Key: "bucket", Value: bucket},
		{Key: "status", Value: status},
	}})
	if err != nil {
		return jsonvalue.Null()
	}

	return v
}

func indentJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	return strings.TrimRight(buf.String(), "\n")
}

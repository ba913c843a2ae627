package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gcottom/go-zaplog"
	"github.com/pmaeria/youtube-transcript-extractor/config"
	"github.com/pmaeria/youtube-transcript-extractor/pkg/http_client"
	"github.com/pmaeria/youtube-transcript-extractor/pkg/youtube_v2"
	"github.com/pmaeria/youtube-transcript-extractor/services/transcript"
)

func main() {
	id := flag.String("id", "", "ID or URL of the video")
	lang := flag.String("lang", "", "caption language, e.g. en")
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()
	cfg, err := config.LoadConfigOrDefault(*configPath)
	if err != nil {
		panic(err)
	}
	ctx := zaplog.CreateAndInject(context.Background())
	svc := transcript.NewTranscriptService(youtube_v2.NewYoutubeClient(cfg, http_client.NewHTTPClient()))
	entries, err := svc.FetchTranscript(ctx, *id, *lang)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		panic(err)
	}
}

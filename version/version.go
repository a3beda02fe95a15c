// Package version checks whether a newer release is out.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/network"
	"github.com/kaltdl/kaltdl/util"
	"github.com/kaltdl/kaltdl/where"
)

// ReleasesURL is the page new versions are announced on.
const ReleasesURL = "https://github.com/kaltdl/kaltdl/releases"

var latestReleaseAPI = "https://api.github.com/repos/kaltdl/kaltdl/releases/latest"

var versionCacher = filesystem.NewCache[string](filepath.Join(where.Cache(), "version.json"), time.Hour*24*2)

// Latest returns the newest released version without the "v" prefix.
// The answer is cached for two days.
func Latest() (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := network.Client.Get(latestReleaseAPI)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release check: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}

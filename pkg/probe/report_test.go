package probe_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/considonet/g-env/pkg/probe"
)

func TestReport_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("not mobile, not IE", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(probe.Report{})
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"isTouchDevice": false,
			"isMobile": false,
			"browserInfo": {
				"appleWebKitVersion": null,
				"chromeVersion": null,
				"isAndroidBrowser": false,
				"iOSVersion": null,
				"IEWindows7": false,
				"IEVersion": false,
				"supportsTransitions": false,
				"supportsAnimations": false,
				"scrollbarWidth": 0
			}
		}`, string(data))
	})

	t.Run("mobile record carries all four flags", func(t *testing.T) {
		t.Parallel()
		report := probe.Report{
			IsTouchDevice: true,
			IsMobile:      &probe.MobileInfo{IOS: true},
			BrowserInfo: probe.BrowserInfo{
				AppleWebKitVersion: f64(603.2),
				IOSVersion:         &[3]int{10, 3, 2},
				IEVersion:          11,
				ScrollbarWidth:     0,
			},
		}
		data, err := json.Marshal(report)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"isTouchDevice": true,
			"isMobile": {"Android": false, "Windows": false, "BlackBerry": false, "iOS": true},
			"browserInfo": {
				"appleWebKitVersion": 603.2,
				"chromeVersion": null,
				"isAndroidBrowser": false,
				"iOSVersion": [10, 3, 2],
				"IEWindows7": false,
				"IEVersion": 11,
				"supportsTransitions": false,
				"supportsAnimations": false,
				"scrollbarWidth": 0
			}
		}`, string(data))
	})
}

func TestReport_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("browser payload", func(t *testing.T) {
		t.Parallel()
		var report probe.Report
		err := json.Unmarshal([]byte(`{
			"isTouchDevice": true,
			"isMobile": {"Android": true, "Windows": false, "BlackBerry": false, "iOS": false},
			"browserInfo": {"appleWebKitVersion": 534.3, "chromeVersion": null, "isAndroidBrowser": true,
				"iOSVersion": null, "IEWindows7": false, "IEVersion": false,
				"supportsTransitions": true, "supportsAnimations": true, "scrollbarWidth": 0}
		}`), &report)
		require.NoError(t, err)
		assert.Equal(t, probe.Report{
			IsTouchDevice: true,
			IsMobile:      &probe.MobileInfo{Android: true},
			BrowserInfo: probe.BrowserInfo{
				AppleWebKitVersion:  f64(534.3),
				IsAndroidBrowser:    true,
				SupportsTransitions: true,
				SupportsAnimations:  true,
			},
		}, report)
	})

	t.Run("false sentinels", func(t *testing.T) {
		t.Parallel()
		var report probe.Report
		require.NoError(t, json.Unmarshal([]byte(`{"isMobile": false, "browserInfo": {"IEVersion": false}}`), &report))
		assert.Nil(t, report.IsMobile)
		assert.False(t, report.BrowserInfo.IEVersion.IsIE())
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		in := probe.Report{
			IsMobile: &probe.MobileInfo{Windows: true},
			BrowserInfo: probe.BrowserInfo{
				ChromeVersion:  f64(30),
				IEVersion:      10,
				ScrollbarWidth: 0,
			},
		}
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out probe.Report
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("invalid isMobile", func(t *testing.T) {
		t.Parallel()
		var report probe.Report
		err := json.Unmarshal([]byte(`{"isMobile": true}`), &report)
		assert.ErrorIs(t, err, probe.ErrInvalidReport)
	})

	t.Run("invalid IEVersion", func(t *testing.T) {
		t.Parallel()
		var report probe.Report
		err := json.Unmarshal([]byte(`{"browserInfo": {"IEVersion": "eleven"}}`), &report)
		assert.ErrorIs(t, err, probe.ErrInvalidReport)
	})
}

func TestReport_MarshalYAML(t *testing.T) {
	t.Parallel()

	report := probe.Report{
		IsMobile: &probe.MobileInfo{BlackBerry: true},
		BrowserInfo: probe.BrowserInfo{
			IEVersion: 9,
		},
	}
	data, err := yaml.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, false, decoded["isTouchDevice"])
	assert.Equal(t, map[string]any{"Android": false, "Windows": false, "BlackBerry": true, "iOS": false}, decoded["isMobile"])

	info, ok := decoded["browserInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 9, info["IEVersion"])
	assert.Nil(t, info["appleWebKitVersion"])

	data, err = yaml.Marshal(probe.Report{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "isMobile: false")
	assert.Contains(t, string(data), "IEVersion: false")
}

func TestReport_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("probed", slog.Any("report", probe.Report{
		IsMobile: &probe.MobileInfo{Android: true, IOS: true},
		BrowserInfo: probe.BrowserInfo{
			ChromeVersion:  f64(30),
			IEVersion:      11,
			ScrollbarWidth: 17,
		},
	}))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	group, ok := entry["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Android,iOS", group["mobile"])
	assert.Equal(t, float64(11), group["ie_version"])
	assert.Equal(t, float64(30), group["chrome"])
	assert.Equal(t, float64(17), group["scrollbar_width"])
	assert.NotContains(t, group, "webkit")
}

func TestMobileInfo_Platforms(t *testing.T) {
	t.Parallel()

	var none *probe.MobileInfo
	assert.Nil(t, none.Platforms())
	assert.Equal(t, []string{"Windows", "BlackBerry"}, (&probe.MobileInfo{Windows: true, BlackBerry: true}).Platforms())
}

package core

import "sync"

const AVG_COUNT uint8 = 30

type MetricsState struct {
	FrameAVGCounter    uint8
	MStimes            [AVG_COUNT]float64
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64
}

var metricsMutex sync.Mutex
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	metricsState = &MetricsState{}
	return nil
}

// MetricsUpdate records one frame lasting frameElapsedTime seconds.
func MetricsUpdate(frameElapsedTime float64) {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	if metricsState == nil {
		return
	}

	frameMS := frameElapsedTime * 1000.0
	metricsState.MStimes[metricsState.FrameAVGCounter] = frameMS
	if metricsState.FrameAVGCounter == AVG_COUNT-1 {
		sum := 0.0
		for i := uint8(0); i < AVG_COUNT; i++ {
			sum += metricsState.MStimes[i]
		}
		metricsState.MSavg = sum / float64(AVG_COUNT)
	}
	metricsState.FrameAVGCounter++
	metricsState.FrameAVGCounter %= AVG_COUNT

	// Frames per second, refreshed once every accumulated second.
	metricsState.AccumulatedFrameMS += frameMS
	metricsState.Frames++
	if metricsState.AccumulatedFrameMS > 1000 {
		metricsState.FPS = float64(metricsState.Frames)
		metricsState.AccumulatedFrameMS -= 1000
		metricsState.Frames = 0
	}
}

// MetricsFrame returns the frames per second and the average frame time in milliseconds.
func MetricsFrame() (float64, float64) {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	if metricsState == nil {
		return 0, 0
	}
	return metricsState.FPS, metricsState.MSavg
}

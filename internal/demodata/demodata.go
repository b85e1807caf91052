// Package demodata generates random tracking-report data for demos and
// smoke tests. Every generator takes its own *rand.Rand so that a seed
// reproduces the same deck.
package demodata

import (
	"math/rand"
	"sort"

	"github.com/VantageDataChat/trackppt"
	"github.com/VantageDataChat/trackppt/gantt"
)

// Terms are the metric names used for devices, series and slices.
var Terms = []string{
	"CPU使用率", "内存占用", "网络延迟", "磁盘读写速率", "线程数", "缓存命中率", "数据吞吐量", "连接数",
	"负载均衡比", "IO等待时间", "CPU上下文切换", "内存碎片率", "GC频率", "JVM堆使用率", "响应时间",
	"系统负载", "磁盘使用率", "TCP连接数", "UDP丢包率", "系统调用频率", "文件句柄数", "线程池活跃数",
	"数据库响应时间", "HTTP请求数", "接口成功率", "服务可用率", "CPU温度", "网络带宽利用率",
	"平均事务耗时", "事务并发数", "内存页交换率", "磁盘IOPS", "缓存大小", "连接建立时间", "DNS解析时间",
	"API错误率", "请求排队长度", "消息队列积压", "心跳丢失次数", "SSL握手时长", "对象创建速率",
	"类加载数量", "JVM非堆内存使用", "资源回收速率", "服务启动时长", "页面加载时间", "WebSocket连接数",
	"数据包重传率", "处理器中断速率",
}

// Generator limits.
const (
	MaxLines      = 10
	MinLineLength = 2
	MaxLineLength = 12
	MinLineValue  = -2.0
	MaxLineValue  = 2.0

	MinPieItems = 2
	MaxPieItems = 10
	MinPieValue = 10.0
	MaxPieValue = 100.0

	MaxDeviceStart    = 60.0
	MinDeviceDuration = 5.0
	MaxDeviceDuration = 30.0
	MaxDeviceEnd      = 100.0
)

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// TrackingDevices returns count intervals with distinct names. Starts lie in
// [0, 60), durations in [5, 30), and ends are capped at 100. count is
// limited to the number of available terms.
func TrackingDevices(rng *rand.Rand, count int) []gantt.Interval {
	count = min(max(count, 0), len(Terms))
	names := rng.Perm(len(Terms))[:count]
	out := make([]gantt.Interval, count)
	for i, n := range names {
		start := uniform(rng, 0, MaxDeviceStart)
		end := min(start+uniform(rng, MinDeviceDuration, MaxDeviceDuration), MaxDeviceEnd)
		out[i] = gantt.Interval{Category: Terms[n], Start: start, End: end}
	}
	return out
}

// Lines returns 1 to 10 series of 2 to 12 values each, values in [-2, 2).
// Series names are drawn from Terms and may repeat.
func Lines(rng *rand.Rand) []trackppt.LineSeries {
	out := make([]trackppt.LineSeries, rng.Intn(MaxLines)+1)
	for i := range out {
		values := make([]float64, MinLineLength+rng.Intn(MaxLineLength-MinLineLength+1))
		for j := range values {
			values[j] = uniform(rng, MinLineValue, MaxLineValue)
		}
		out[i] = trackppt.LineSeries{Name: Terms[rng.Intn(len(Terms))], Values: values}
	}
	return out
}

// PieSlices draws 2 to 10 named values in [10, 100). A name drawn twice
// keeps its first position and takes the later value, so fewer slices than
// draws may be returned.
func PieSlices(rng *rand.Rand) []trackppt.PieSlice {
	draws := MinPieItems + rng.Intn(MaxPieItems-MinPieItems+1)
	var out []trackppt.PieSlice
	index := make(map[string]int)
	for range draws {
		name := Terms[rng.Intn(len(Terms))]
		value := uniform(rng, MinPieValue, MaxPieValue)
		if i, ok := index[name]; ok {
			out[i].Value = value
			continue
		}
		index[name] = len(out)
		out = append(out, trackppt.PieSlice{Name: name, Value: value})
	}
	return out
}

// SortSlicesDescending orders slices by value, largest first. Equal values
// keep their order.
func SortSlicesDescending(slices []trackppt.PieSlice) {
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})
}

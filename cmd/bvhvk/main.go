// Command bvhvk is a minimal Vulkan device-capability probe: it creates a
// headless Vulkan instance, enumerates physical devices, and reports the
// limits that matter for uploading a built BVH2 node array as a GPU
// storage buffer for a compute-shader traversal kernel — maxStorageBufferRange
// bounds how large a single binding can be, maxComputeWorkGroupCount bounds
// how many traversal threads one dispatch can launch. It does not open a
// window or render anything; grounded in the instance/device setup in the
// teacher engine's render_vulkan.go, trimmed to the device-query steps.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/mirstar13/rtbvh/bvh2"
)

func main() {
	nodeCount := flag.Int("node-count", 0, "report whether a tree of this many nodes fits a single storage buffer binding")
	flag.Parse()

	if err := vk.Init(); err != nil {
		log.Fatalf("init vulkan loader: %v", err)
	}

	appInfo := vk.ApplicationInfo{
		SType:         vk.StructureTypeApplicationInfo,
		ApiVersion:    vk.MakeVersion(1, 0, 0),
		PEngineName:   "rtbvh\x00",
		EngineVersion: vk.MakeVersion(1, 0, 0),
	}
	instanceInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &appInfo,
	}

	var instance vk.Instance
	if res := vk.CreateInstance(&instanceInfo, nil, &instance); res != vk.Success {
		log.Fatalf("create instance: %v", res)
	}
	defer vk.DestroyInstance(instance, nil)

	var deviceCount uint32
	vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)
	if deviceCount == 0 {
		fmt.Fprintln(os.Stderr, "no GPU with Vulkan support found")
		os.Exit(1)
	}
	devices := make([]vk.PhysicalDevice, deviceCount)
	vk.EnumeratePhysicalDevices(instance, &deviceCount, devices)

	fmt.Printf("found %d physical device(s)\n", len(devices))

	nodeBytes := uint64(*nodeCount) * 64 // spec's fixed 64-byte Node record

	for i, device := range devices {
		var props vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(device, &props)
		props.Deref()
		props.Limits.Deref()

		name := deviceName(props.DeviceName)
		limits := props.Limits

		fmt.Printf("device %d: %s (type %d)\n", i, name, props.DeviceType)
		fmt.Printf("  maxStorageBufferRange:     %d bytes\n", limits.MaxStorageBufferRange)
		fmt.Printf("  maxComputeWorkGroupCount:  %v\n", limits.MaxComputeWorkGroupCount)
		fmt.Printf("  maxComputeWorkGroupInvocations: %d\n", limits.MaxComputeWorkGroupInvocations)

		if *nodeCount > 0 {
			fits := nodeBytes <= uint64(limits.MaxStorageBufferRange)
			fmt.Printf("  %d nodes (%d bytes, stride %d from bvh2.Node) fits single binding: %v\n",
				*nodeCount, nodeBytes, nodeStride, fits)
		}
	}
}

var nodeStride = int(unsafe.Sizeof(bvh2.Node{}))

func deviceName(raw [256]int8) string {
	var name []byte
	for _, b := range raw {
		if b == 0 {
			break
		}
		name = append(name, byte(b))
	}
	return string(name)
}

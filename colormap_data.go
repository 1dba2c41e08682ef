package niceplots

// viridis is matplotlib's viridis colormap at 256 evenly spaced points.
// It is never modified; Viridis hands out copies.
var viridis = Table{
	{R: 0.267004, G: 0.004874, B: 0.329415},
	{R: 0.268129, G: 0.008592, B: 0.333811},
	{R: 0.269215, G: 0.012472, B: 0.338263},
	{R: 0.270262, G: 0.016510, B: 0.342769},
	{R: 0.271271, G: 0.020698, B: 0.347327},
	{R: 0.272239, G: 0.025033, B: 0.351937},
	{R: 0.273166, G: 0.029509, B: 0.356596},
	{R: 0.274052, G: 0.034120, B: 0.361303},
	{R: 0.274897, G: 0.038861, B: 0.366055},
	{R: 0.275700, G: 0.043727, B: 0.370852},
	{R: 0.276460, G: 0.048712, B: 0.375691},
	{R: 0.277176, G: 0.053811, B: 0.380572},
	{R: 0.277849, G: 0.059019, B: 0.385491},
	{R: 0.278477, G: 0.064331, B: 0.390448},
	{R: 0.279060, G: 0.069740, B: 0.395441},
	{R: 0.279597, G: 0.075242, B: 0.400469},
	{R: 0.280089, G: 0.080831, B: 0.405528},
	{R: 0.280534, G: 0.086502, B: 0.410619},
	{R: 0.280931, G: 0.092249, B: 0.415739},
	{R: 0.281281, G: 0.098068, B: 0.420887},
	{R: 0.281583, G: 0.103952, B: 0.426060},
	{R: 0.281836, G: 0.109898, B: 0.431258},
	{R: 0.282039, G: 0.115898, B: 0.436478},
	{R: 0.282192, G: 0.121948, B: 0.441719},
	{R: 0.282295, G: 0.128042, B: 0.446979},
	{R: 0.282346, G: 0.134175, B: 0.452257},
	{R: 0.282353, G: 0.140514, B: 0.457686},
	{R: 0.282353, G: 0.147663, B: 0.463629},
	{R: 0.282353, G: 0.154723, B: 0.469084},
	{R: 0.282088, G: 0.160854, B: 0.473225},
	{R: 0.280969, G: 0.166465, B: 0.476697},
	{R: 0.279514, G: 0.171821, B: 0.479786},
	{R: 0.278311, G: 0.177140, B: 0.482715},
	{R: 0.277425, G: 0.182471, B: 0.485418},
	{R: 0.276619, G: 0.187737, B: 0.487904},
	{R: 0.275815, G: 0.192897, B: 0.490348},
	{R: 0.274932, G: 0.197908, B: 0.492927},
	{R: 0.273904, G: 0.202736, B: 0.495829},
	{R: 0.272752, G: 0.207399, B: 0.499124},
	{R: 0.271502, G: 0.211939, B: 0.502633},
	{R: 0.270175, G: 0.216397, B: 0.506156},
	{R: 0.268794, G: 0.220814, B: 0.509495},
	{R: 0.267380, G: 0.225230, B: 0.512452},
	{R: 0.265944, G: 0.229672, B: 0.514895},
	{R: 0.264449, G: 0.234085, B: 0.517103},
	{R: 0.262895, G: 0.238466, B: 0.519155},
	{R: 0.261294, G: 0.242827, B: 0.521074},
	{R: 0.259655, G: 0.247178, B: 0.522880},
	{R: 0.257989, G: 0.251530, B: 0.524595},
	{R: 0.256308, G: 0.255895, B: 0.526241},
	{R: 0.254622, G: 0.260283, B: 0.527839},
	{R: 0.252941, G: 0.264706, B: 0.529412},
	{R: 0.251244, G: 0.269172, B: 0.530941},
	{R: 0.249512, G: 0.273672, B: 0.532401},
	{R: 0.247762, G: 0.278190, B: 0.533797},
	{R: 0.246012, G: 0.282708, B: 0.535135},
	{R: 0.244277, G: 0.287211, B: 0.536422},
	{R: 0.242576, G: 0.291684, B: 0.537665},
	{R: 0.240933, G: 0.296145, B: 0.538871},
	{R: 0.239330, G: 0.300599, B: 0.540042},
	{R: 0.237738, G: 0.305043, B: 0.541176},
	{R: 0.236127, G: 0.309474, B: 0.542274},
	{R: 0.234470, G: 0.313889, B: 0.543334},
	{R: 0.232738, G: 0.318285, B: 0.544357},
	{R: 0.230902, G: 0.322671, B: 0.545346},
	{R: 0.228949, G: 0.327242, B: 0.546407},
	{R: 0.226895, G: 0.331993, B: 0.547540},
	{R: 0.224762, G: 0.336816, B: 0.548691},
	{R: 0.222570, G: 0.341602, B: 0.549805},
	{R: 0.220340, G: 0.346242, B: 0.550829},
	{R: 0.218093, G: 0.350628, B: 0.551709},
	{R: 0.215850, G: 0.354650, B: 0.552389},
	{R: 0.213631, G: 0.358200, B: 0.552817},
	{R: 0.211455, G: 0.361166, B: 0.552941},
	{R: 0.209201, G: 0.363402, B: 0.552941},
	{R: 0.206934, G: 0.365275, B: 0.552941},
	{R: 0.204843, G: 0.367345, B: 0.552941},
	{R: 0.203079, G: 0.370145, B: 0.552980},
	{R: 0.201529, G: 0.373811, B: 0.553264},
	{R: 0.200122, G: 0.378160, B: 0.553759},
	{R: 0.198813, G: 0.382999, B: 0.554388},
	{R: 0.197556, G: 0.388137, B: 0.555075},
	{R: 0.196306, G: 0.393383, B: 0.555742},
	{R: 0.195020, G: 0.398543, B: 0.556314},
	{R: 0.193652, G: 0.403428, B: 0.556713},
	{R: 0.192157, G: 0.407843, B: 0.556863},
	{R: 0.190519, G: 0.411885, B: 0.556863},
	{R: 0.188769, G: 0.415788, B: 0.556863},
	{R: 0.186931, G: 0.419576, B: 0.556863},
	{R: 0.185029, G: 0.423271, B: 0.556863},
	{R: 0.183086, G: 0.426896, B: 0.556863},
	{R: 0.181127, G: 0.430474, B: 0.556863},
	{R: 0.179176, G: 0.434027, B: 0.556863},
	{R: 0.177258, G: 0.437579, B: 0.556863},
	{R: 0.175395, G: 0.441151, B: 0.556863},
	{R: 0.173612, G: 0.444767, B: 0.556863},
	{R: 0.171928, G: 0.448442, B: 0.556863},
	{R: 0.170304, G: 0.452125, B: 0.556863},
	{R: 0.168722, G: 0.455804, B: 0.556863},
	{R: 0.167179, G: 0.459484, B: 0.556863},
	{R: 0.165672, G: 0.463171, B: 0.556863},
	{R: 0.164195, G: 0.466871, B: 0.556863},
	{R: 0.162745, G: 0.470588, B: 0.556863},
	{R: 0.161303, G: 0.474389, B: 0.556863},
	{R: 0.159863, G: 0.478292, B: 0.556863},
	{R: 0.158441, G: 0.482233, B: 0.556863},
	{R: 0.157054, G: 0.486148, B: 0.556863},
	{R: 0.155717, G: 0.489974, B: 0.556863},
	{R: 0.154448, G: 0.493647, B: 0.556863},
	{R: 0.153262, G: 0.497101, B: 0.556863},
	{R: 0.152197, G: 0.500244, B: 0.556863},
	{R: 0.151266, G: 0.503075, B: 0.556863},
	{R: 0.150365, G: 0.505830, B: 0.556863},
	{R: 0.149383, G: 0.508751, B: 0.556863},
	{R: 0.148238, G: 0.511990, B: 0.556812},
	{R: 0.146962, G: 0.515368, B: 0.556563},
	{R: 0.145578, G: 0.518861, B: 0.556134},
	{R: 0.144105, G: 0.522460, B: 0.555558},
	{R: 0.142563, G: 0.526157, B: 0.554870},
	{R: 0.140970, G: 0.529945, B: 0.554102},
	{R: 0.139346, G: 0.533816, B: 0.553287},
	{R: 0.137710, G: 0.537762, B: 0.552458},
	{R: 0.136081, G: 0.541775, B: 0.551648},
	{R: 0.134478, G: 0.545848, B: 0.550891},
	{R: 0.132921, G: 0.549973, B: 0.550219},
	{R: 0.131428, G: 0.554142, B: 0.549666},
	{R: 0.130019, G: 0.558347, B: 0.549265},
	{R: 0.128713, G: 0.562581, B: 0.549048},
	{R: 0.127568, G: 0.566949, B: 0.550556},
	{R: 0.126861, G: 0.571181, B: 0.550446},
	{R: 0.126177, G: 0.575382, B: 0.550129},
	{R: 0.125519, G: 0.579544, B: 0.549623},
	{R: 0.124894, G: 0.583660, B: 0.548946},
	{R: 0.124307, G: 0.587723, B: 0.548117},
	{R: 0.123762, G: 0.591726, B: 0.547153},
	{R: 0.123266, G: 0.595660, B: 0.546073},
	{R: 0.122823, G: 0.599519, B: 0.544895},
	{R: 0.122438, G: 0.603296, B: 0.543638},
	{R: 0.122117, G: 0.606982, B: 0.542319},
	{R: 0.121865, G: 0.610570, B: 0.540958},
	{R: 0.121687, G: 0.614054, B: 0.539571},
	{R: 0.121588, G: 0.617426, B: 0.538178},
	{R: 0.121569, G: 0.620662, B: 0.536762},
	{R: 0.121569, G: 0.623607, B: 0.534960},
	{R: 0.121569, G: 0.626388, B: 0.532876},
	{R: 0.121569, G: 0.629213, B: 0.530776},
	{R: 0.121599, G: 0.632280, B: 0.528909},
	{R: 0.122140, G: 0.635576, B: 0.527215},
	{R: 0.123266, G: 0.639021, B: 0.525601},
	{R: 0.124854, G: 0.642569, B: 0.524035},
	{R: 0.126778, G: 0.646174, B: 0.522488},
	{R: 0.128916, G: 0.649789, B: 0.520928},
	{R: 0.131142, G: 0.653367, B: 0.519325},
	{R: 0.133333, G: 0.656863, B: 0.517647},
	{R: 0.135646, G: 0.660268, B: 0.515938},
	{R: 0.138295, G: 0.663624, B: 0.514235},
	{R: 0.141244, G: 0.666959, B: 0.512498},
	{R: 0.144458, G: 0.670301, B: 0.510690},
	{R: 0.147900, G: 0.673679, B: 0.508772},
	{R: 0.151535, G: 0.677119, B: 0.506704},
	{R: 0.155374, G: 0.680651, B: 0.504456},
	{R: 0.159552, G: 0.684281, B: 0.502038},
	{R: 0.164054, G: 0.687986, B: 0.499463},
	{R: 0.168847, G: 0.691746, B: 0.496742},
	{R: 0.173900, G: 0.695535, B: 0.493886},
	{R: 0.179179, G: 0.699333, B: 0.490905},
	{R: 0.184653, G: 0.703116, B: 0.487810},
	{R: 0.190288, G: 0.706862, B: 0.484612},
	{R: 0.196053, G: 0.710548, B: 0.481322},
	{R: 0.201916, G: 0.714150, B: 0.477951},
	{R: 0.207843, G: 0.717647, B: 0.474510},
	{R: 0.214034, G: 0.721037, B: 0.470827},
	{R: 0.220644, G: 0.724348, B: 0.466792},
	{R: 0.227568, G: 0.727595, B: 0.462510},
	{R: 0.234703, G: 0.730797, B: 0.458086},
	{R: 0.241947, G: 0.733970, B: 0.453624},
	{R: 0.249197, G: 0.737132, B: 0.449228},
	{R: 0.256348, G: 0.740299, B: 0.445004},
	{R: 0.263299, G: 0.743489, B: 0.441054},
	{R: 0.269930, G: 0.746718, B: 0.437496},
	{R: 0.276222, G: 0.749977, B: 0.434334},
	{R: 0.282516, G: 0.753223, B: 0.431266},
	{R: 0.289189, G: 0.756414, B: 0.427962},
	{R: 0.296422, G: 0.759540, B: 0.424286},
	{R: 0.304014, G: 0.762641, B: 0.420435},
	{R: 0.311907, G: 0.765717, B: 0.416422},
	{R: 0.320047, G: 0.768767, B: 0.412256},
	{R: 0.328380, G: 0.771791, B: 0.407946},
	{R: 0.336853, G: 0.774786, B: 0.403502},
	{R: 0.345412, G: 0.777752, B: 0.398931},
	{R: 0.354003, G: 0.780688, B: 0.394244},
	{R: 0.362573, G: 0.783593, B: 0.389450},
	{R: 0.371155, G: 0.786457, B: 0.384483},
	{R: 0.379908, G: 0.789270, B: 0.379208},
	{R: 0.388789, G: 0.792042, B: 0.373697},
	{R: 0.397745, G: 0.794788, B: 0.368028},
	{R: 0.406722, G: 0.797520, B: 0.362282},
	{R: 0.415667, G: 0.800253, B: 0.356538},
	{R: 0.424526, G: 0.803000, B: 0.350875},
	{R: 0.433231, G: 0.805767, B: 0.345343},
	{R: 0.441760, G: 0.808535, B: 0.339864},
	{R: 0.450228, G: 0.811303, B: 0.334393},
	{R: 0.458755, G: 0.814071, B: 0.328892},
	{R: 0.467462, G: 0.816840, B: 0.323323},
	{R: 0.476471, G: 0.819608, B: 0.317647},
	{R: 0.485807, G: 0.822429, B: 0.311872},
	{R: 0.495390, G: 0.825328, B: 0.306035},
	{R: 0.505178, G: 0.828262, B: 0.300135},
	{R: 0.515127, G: 0.831190, B: 0.294176},
	{R: 0.525197, G: 0.834067, B: 0.288159},
	{R: 0.535346, G: 0.836853, B: 0.282086},
	{R: 0.545531, G: 0.839505, B: 0.275957},
	{R: 0.555710, G: 0.841980, B: 0.269776},
	{R: 0.565886, G: 0.844245, B: 0.263540},
	{R: 0.576247, G: 0.846349, B: 0.257231},
	{R: 0.586732, G: 0.848330, B: 0.250847},
	{R: 0.597231, G: 0.850222, B: 0.244389},
	{R: 0.607634, G: 0.852056, B: 0.237858},
	{R: 0.617834, G: 0.853866, B: 0.231256},
	{R: 0.627699, G: 0.855666, B: 0.224568},
	{R: 0.637089, G: 0.857358, B: 0.217711},
	{R: 0.646277, G: 0.859000, B: 0.210752},
	{R: 0.655600, G: 0.860684, B: 0.203791},
	{R: 0.665393, G: 0.862503, B: 0.196925},
	{R: 0.675834, G: 0.864911, B: 0.190333},
	{R: 0.686767, G: 0.867821, B: 0.183933},
	{R: 0.698118, G: 0.870058, B: 0.177304},
	{R: 0.709888, G: 0.870588, B: 0.169743},
	{R: 0.722587, G: 0.870588, B: 0.159225},
	{R: 0.735264, G: 0.870588, B: 0.150598},
	{R: 0.746856, G: 0.870603, B: 0.148763},
	{R: 0.758172, G: 0.870723, B: 0.148275},
	{R: 0.769425, G: 0.870961, B: 0.147821},
	{R: 0.780607, G: 0.871316, B: 0.147399},
	{R: 0.791711, G: 0.871787, B: 0.147007},
	{R: 0.802729, G: 0.872373, B: 0.146646},
	{R: 0.813653, G: 0.873072, B: 0.146313},
	{R: 0.824476, G: 0.873882, B: 0.146008},
	{R: 0.835189, G: 0.874804, B: 0.145729},
	{R: 0.845787, G: 0.875835, B: 0.145476},
	{R: 0.856259, G: 0.876974, B: 0.145247},
	{R: 0.866600, G: 0.878219, B: 0.145041},
	{R: 0.876802, G: 0.879571, B: 0.144857},
	{R: 0.886856, G: 0.881026, B: 0.144693},
	{R: 0.896755, G: 0.882585, B: 0.144549},
	{R: 0.906492, G: 0.884245, B: 0.144424},
	{R: 0.916059, G: 0.886006, B: 0.144316},
	{R: 0.925449, G: 0.887866, B: 0.144224},
	{R: 0.934652, G: 0.889823, B: 0.144147},
	{R: 0.943663, G: 0.891877, B: 0.144084},
	{R: 0.952473, G: 0.894027, B: 0.144034},
	{R: 0.961075, G: 0.896270, B: 0.143996},
	{R: 0.969462, G: 0.898606, B: 0.143968},
	{R: 0.977624, G: 0.901033, B: 0.143949},
	{R: 0.985555, G: 0.903551, B: 0.143939},
	{R: 0.993248, G: 0.906157, B: 0.143936},
}
